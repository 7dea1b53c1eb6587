package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	domainerrors "github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

var _ = Describe("ReviewService", func() {
	var (
		reviewRepo  *fakeReviewRepo
		serviceRepo *fakeServiceRepo
		svc         *services.ReviewService
		ctx         context.Context
		serviceID   string
	)

	BeforeEach(func() {
		reviewRepo = &fakeReviewRepo{}
		serviceRepo = &fakeServiceRepo{}
		svc = services.NewReviewService(reviewRepo, serviceRepo, nopLogger{})
		ctx = context.Background()

		service := &entities.Service{Title: "Jardinagem da Maria", ProviderID: "user-1"}
		Expect(serviceRepo.Create(ctx, service)).To(Succeed())
		serviceID = service.ID
	})

	It("registra avaliação para um serviço existente", func() {
		review, err := svc.CreateReview(ctx, services.CreateReviewInput{
			ServiceID: serviceID,
			Rating:    5,
			Comment:   "Excelente trabalho",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(review.ID).NotTo(BeEmpty())

		listed, err := svc.ListByService(ctx, serviceID)
		Expect(err).NotTo(HaveOccurred())
		Expect(listed).To(HaveLen(1))
	})

	It("rejeita avaliação para serviço inexistente", func() {
		_, err := svc.CreateReview(ctx, services.CreateReviewInput{
			ServiceID: "service-999",
			Rating:    4,
			Comment:   "Bom",
		})
		Expect(err).To(MatchError(domainerrors.ErrServiceNotFound))
	})

	It("rejeita nota fora do intervalo e comentário vazio", func() {
		_, err := svc.CreateReview(ctx, services.CreateReviewInput{
			ServiceID: serviceID, Rating: 6, Comment: "Ótimo",
		})
		Expect(err).To(HaveOccurred())

		_, err = svc.CreateReview(ctx, services.CreateReviewInput{
			ServiceID: serviceID, Rating: 3,
		})
		Expect(err).To(HaveOccurred())
		Expect(reviewRepo.reviews).To(BeEmpty())
	})
})
