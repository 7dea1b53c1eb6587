package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	domainerrors "github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

var _ = Describe("UserService.Register", func() {
	var (
		userRepo     *fakeUserRepo
		categoryRepo *fakeCategoryRepo
		serviceRepo  *fakeServiceRepo
		uow          *fakeUnitOfWork
		svc          *services.UserService
		ctx          context.Context
	)

	newService := func(atomic bool) *services.UserService {
		return services.NewUserService(
			userRepo, categoryRepo, serviceRepo,
			plainHasher{}, uow, nopLogger{}, atomic,
		)
	}

	hourlyRate := func(v float64) *float64 { return &v }

	BeforeEach(func() {
		userRepo = &fakeUserRepo{}
		categoryRepo = &fakeCategoryRepo{}
		serviceRepo = &fakeServiceRepo{}
		uow = &fakeUnitOfWork{}
		svc = newService(false)
		ctx = context.Background()
	})

	It("rejeita registro sem senha e não cria usuário", func() {
		_, err := svc.Register(ctx, services.RegisterInput{
			Name:  "Maria",
			Email: "maria@example.com",
		})

		Expect(err).To(MatchError(domainerrors.ErrMissingRequiredFields))
		Expect(userRepo.users).To(BeEmpty())
	})

	It("rejeita email duplicado e mantém apenas um usuário", func() {
		_, err := svc.Register(ctx, services.RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Register(ctx, services.RegisterInput{
			Name: "Outra Maria", Email: "maria@example.com", Password: "outrasenha",
		})

		Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		Expect(userRepo.users).To(HaveLen(1))
	})

	It("nunca persiste a senha em texto plano", func() {
		user, err := svc.Register(ctx, services.RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(user.PasswordHash).NotTo(Equal("s3nh4forte"))
		Expect(user.PasswordHash).NotTo(BeEmpty())
	})

	It("registra cliente sem provisionar perfil de prestador", func() {
		user, err := svc.Register(ctx, services.RegisterInput{
			Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
			Role: "customer",
			Professional: &services.ProfessionalInput{
				Categories: []string{"Jardinagem"},
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(user.Role).To(Equal(entities.RoleCustomer))
		Expect(categoryRepo.categories).To(BeEmpty())
		Expect(serviceRepo.services).To(BeEmpty())
	})

	It("aceita o role legado PROFESSIONAL como prestador", func() {
		user, err := svc.Register(ctx, services.RegisterInput{
			Name: "João", Email: "joao@example.com", Password: "s3nh4forte",
			Role:         "PROFESSIONAL",
			Professional: &services.ProfessionalInput{},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(user.Role).To(Equal(entities.RoleProvider))
	})

	Context("quando o role é de prestador com descritor profissional", func() {
		It("provisiona categoria, serviço e área de atendimento", func() {
			user, err := svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role: "provider",
				Address: &services.AddressInput{
					City:         "São Paulo",
					Neighborhood: "Centro",
				},
				Professional: &services.ProfessionalInput{
					Categories:  []string{"Jardinagem", "Paisagismo"},
					Description: "Jardins residenciais",
					HourlyRate:  hourlyRate(80),
				},
			})

			Expect(err).NotTo(HaveOccurred())

			Expect(categoryRepo.categories).To(HaveLen(1))
			Expect(categoryRepo.categories[0].Name).To(Equal("Jardinagem"))

			Expect(serviceRepo.services).To(HaveLen(1))
			created := serviceRepo.services[0]
			Expect(created.Title).To(Equal("Maria - Jardinagem"))
			Expect(created.Description).To(Equal("Jardins residenciais"))
			Expect(created.PriceRange).To(Equal("80"))
			Expect(created.ProviderID).To(Equal(user.ID))

			Expect(serviceRepo.areas).To(HaveLen(1))
			Expect(serviceRepo.areas[0].Neighborhood).To(Equal("Centro"))
			Expect(serviceRepo.areas[0].City).To(Equal("São Paulo"))
		})

		It("reusa categoria existente com o mesmo nome", func() {
			_, err := categoryRepo.FindOrCreateByName(ctx, "Jardinagem")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role:         "provider",
				Professional: &services.ProfessionalInput{Categories: []string{"Jardinagem"}},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(categoryRepo.categories).To(HaveLen(1))
		})

		It("usa os padrões quando o descritor vem vazio", func() {
			_, err := svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role:         "provider",
				Professional: &services.ProfessionalInput{},
			})

			Expect(err).NotTo(HaveOccurred())

			Expect(categoryRepo.categories[0].Name).To(Equal(entities.DefaultCategoryName))
			Expect(serviceRepo.services[0].Title).To(Equal("Maria - Geral"))
			Expect(serviceRepo.services[0].PriceRange).To(Equal(entities.PriceNegotiable))
			Expect(serviceRepo.areas[0].Neighborhood).To(Equal(entities.NeighborhoodNotInformed))
			Expect(serviceRepo.areas[0].City).To(Equal(""))
		})

		It("usa o campo bairro quando neighborhood não vem preenchido", func() {
			_, err := svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role:         "provider",
				Address:      &services.AddressInput{Bairro: "Vila Mariana"},
				Professional: &services.ProfessionalInput{},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(serviceRepo.areas[0].Neighborhood).To(Equal("Vila Mariana"))
		})

		It("absorve falha de provisionamento e mantém o usuário criado", func() {
			serviceRepo.failCreate = errors.New("provider already has a service")

			user, err := svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role:         "provider",
				Professional: &services.ProfessionalInput{Categories: []string{"Jardinagem"}},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(userRepo.users).To(HaveLen(1))
			Expect(serviceRepo.services).To(BeEmpty())
		})

		It("absorve falha na criação da área sem desfazer o usuário", func() {
			serviceRepo.failArea = errors.New("storage unavailable")

			_, err := svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role:         "provider",
				Professional: &services.ProfessionalInput{},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(userRepo.users).To(HaveLen(1))
			Expect(serviceRepo.services).To(HaveLen(1))
		})
	})

	Context("no modo atômico", func() {
		BeforeEach(func() {
			svc = newService(true)
		})

		It("propaga falha de provisionamento e desfaz a transação", func() {
			serviceRepo.failCreate = errors.New("storage unavailable")

			_, err := svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role:         "provider",
				Professional: &services.ProfessionalInput{},
			})

			Expect(err).To(HaveOccurred())
			Expect(uow.rolledBack).To(BeTrue())
		})

		It("registra normalmente quando o provisionamento funciona", func() {
			user, err := svc.Register(ctx, services.RegisterInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3nh4forte",
				Role:         "provider",
				Professional: &services.ProfessionalInput{},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
			Expect(serviceRepo.services).To(HaveLen(1))
		})
	})
})
