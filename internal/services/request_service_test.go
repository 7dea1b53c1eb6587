package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	domainerrors "github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

var _ = Describe("RequestService", func() {
	var (
		requestRepo *fakeRequestRepo
		serviceRepo *fakeServiceRepo
		svc         *services.RequestService
		ctx         context.Context
		serviceID   string
	)

	BeforeEach(func() {
		requestRepo = &fakeRequestRepo{}
		serviceRepo = &fakeServiceRepo{}
		svc = services.NewRequestService(requestRepo, serviceRepo, nopLogger{})
		ctx = context.Background()

		service := &entities.Service{Title: "Jardinagem da Maria", ProviderID: "user-1"}
		Expect(serviceRepo.Create(ctx, service)).To(Succeed())
		serviceID = service.ID
	})

	It("cria solicitação em pending", func() {
		request, err := svc.CreateRequest(ctx, services.CreateRequestInput{
			ServiceID:   serviceID,
			RequesterID: "user-2",
			Message:     "Preciso de poda no quintal",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(request.Status).To(Equal(entities.StatusPending))
		Expect(request.ID).NotTo(BeEmpty())
	})

	It("rejeita solicitação para serviço inexistente", func() {
		_, err := svc.CreateRequest(ctx, services.CreateRequestInput{
			ServiceID:   "service-999",
			RequesterID: "user-2",
		})
		Expect(err).To(MatchError(domainerrors.ErrServiceNotFound))
	})

	It("aplica transições permitidas até a conclusão", func() {
		request, err := svc.CreateRequest(ctx, services.CreateRequestInput{
			ServiceID: serviceID, RequesterID: "user-2",
		})
		Expect(err).NotTo(HaveOccurred())

		for _, next := range []entities.RequestStatus{
			entities.StatusAccepted,
			entities.StatusInProgress,
			entities.StatusCompleted,
		} {
			updated, err := svc.UpdateStatus(ctx, request.ID, next)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(next))
		}
	})

	It("rejeita transição não permitida e mantém o status anterior", func() {
		request, err := svc.CreateRequest(ctx, services.CreateRequestInput{
			ServiceID: serviceID, RequesterID: "user-2",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.UpdateStatus(ctx, request.ID, entities.StatusCompleted)
		Expect(err).To(MatchError(domainerrors.ErrInvalidStatusTransition))

		persisted, err := svc.GetRequest(ctx, request.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(persisted.Status).To(Equal(entities.StatusPending))
	})

	It("rejeita status desconhecido", func() {
		request, err := svc.CreateRequest(ctx, services.CreateRequestInput{
			ServiceID: serviceID, RequesterID: "user-2",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.UpdateStatus(ctx, request.ID, entities.RequestStatus("paused"))
		Expect(err).To(MatchError(domainerrors.ErrInvalidStatus))
	})

	It("retorna não encontrado para solicitação inexistente", func() {
		_, err := svc.GetRequest(ctx, "request-999")
		Expect(err).To(MatchError(domainerrors.ErrRequestNotFound))

		_, err = svc.UpdateStatus(ctx, "request-999", entities.StatusAccepted)
		Expect(err).To(MatchError(domainerrors.ErrRequestNotFound))
	})
})
