package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	domainerrors "github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

var _ = Describe("ServiceService", func() {
	var (
		serviceRepo  *fakeServiceRepo
		categoryRepo *fakeCategoryRepo
		svc          *services.ServiceService
		ctx          context.Context
	)

	BeforeEach(func() {
		serviceRepo = &fakeServiceRepo{}
		categoryRepo = &fakeCategoryRepo{}
		svc = services.NewServiceService(serviceRepo, categoryRepo, nopLogger{})
		ctx = context.Background()
	})

	It("cria serviço com categoria upsertada e preço padrão", func() {
		created, err := svc.CreateService(ctx, services.CreateServiceInput{
			Title:        "Jardinagem da Maria",
			ProviderID:   "user-1",
			CategoryName: "Jardinagem",
			Areas: []entities.ServiceArea{
				{City: "São Paulo", Neighborhood: "Centro"},
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(created.PriceRange).To(Equal(entities.PriceNegotiable))
		Expect(categoryRepo.categories).To(HaveLen(1))
		Expect(serviceRepo.areas).To(HaveLen(1))
		Expect(serviceRepo.areas[0].ServiceID).To(Equal(created.ID))
	})

	It("rejeita criação sem título ou categoria", func() {
		_, err := svc.CreateService(ctx, services.CreateServiceInput{
			ProviderID: "user-1",
		})
		Expect(err).To(MatchError(domainerrors.ErrMissingRequiredFields))
	})

	It("retorna não encontrado para serviço inexistente", func() {
		_, err := svc.GetService(ctx, "service-999")
		Expect(err).To(MatchError(domainerrors.ErrServiceNotFound))

		_, err = svc.UpdateService(ctx, "service-999", services.UpdateServiceInput{})
		Expect(err).To(MatchError(domainerrors.ErrServiceNotFound))

		Expect(svc.DeleteService(ctx, "service-999")).To(MatchError(domainerrors.ErrServiceNotFound))
	})

	It("atualiza apenas os campos informados", func() {
		created, err := svc.CreateService(ctx, services.CreateServiceInput{
			Title:        "Jardinagem da Maria",
			Description:  "Jardins residenciais",
			ProviderID:   "user-1",
			CategoryName: "Jardinagem",
		})
		Expect(err).NotTo(HaveOccurred())

		newTitle := "Jardinagem e Paisagismo"
		updated, err := svc.UpdateService(ctx, created.ID, services.UpdateServiceInput{
			Title: &newTitle,
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Title).To(Equal("Jardinagem e Paisagismo"))
		Expect(updated.Description).To(Equal("Jardins residenciais"))
	})

	It("delega os filtros do diretório ao repositório", func() {
		_, err := svc.CreateService(ctx, services.CreateServiceInput{
			Title:        "Jardinagem da Maria",
			ProviderID:   "user-1",
			CategoryName: "Jardinagem",
			Areas:        []entities.ServiceArea{{Neighborhood: "Centro"}},
		})
		Expect(err).NotTo(HaveOccurred())

		all, err := svc.ListServices(ctx, repositories.ServiceFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
	})
})
