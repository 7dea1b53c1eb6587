package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		userRepo *fakeUserRepo
		svc      *services.AuthService
		ctx      context.Context
	)

	BeforeEach(func() {
		userRepo = &fakeUserRepo{}
		svc = services.NewAuthService(userRepo, plainHasher{}, fakeTokenManager{}, nopLogger{})
		ctx = context.Background()

		registration := services.NewUserService(
			userRepo, &fakeCategoryRepo{}, &fakeServiceRepo{},
			plainHasher{}, &fakeUnitOfWork{}, nopLogger{}, false,
		)
		_, err := registration.Register(ctx, services.RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
			Role: "provider",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("emite token com id e role do usuário", func() {
		token, user, err := svc.Login(ctx, "maria@example.com", "s3nh4forte")

		Expect(err).NotTo(HaveOccurred())
		Expect(user.Name).To(Equal("Maria"))
		Expect(token).To(Equal("token:" + user.ID + ":provider"))

		claims, err := svc.Verify(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.UserID).To(Equal(user.ID))
		Expect(claims.Role).To(Equal("provider"))
	})

	It("retorna o mesmo erro genérico para senha incorreta e email desconhecido", func() {
		_, _, wrongPassErr := svc.Login(ctx, "maria@example.com", "senhaerrada")
		_, _, unknownErr := svc.Login(ctx, "ninguem@example.com", "s3nh4forte")

		Expect(wrongPassErr).To(MatchError(domainerrors.ErrInvalidCredentials))
		Expect(unknownErr).To(MatchError(domainerrors.ErrInvalidCredentials))
	})

	It("rejeita token inválido", func() {
		_, err := svc.Verify("lixo")
		Expect(err).To(MatchError(domainerrors.ErrUnauthorized))
	})
})
