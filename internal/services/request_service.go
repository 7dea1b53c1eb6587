package services

import (
	"context"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// RequestService contém a lógica de solicitações de serviço
type RequestService struct {
	requestRepo repositories.RequestRepository
	serviceRepo repositories.ServiceRepository
	logger      ports.Logger
}

// NewRequestService cria um novo RequestService
func NewRequestService(
	requestRepo repositories.RequestRepository,
	serviceRepo repositories.ServiceRepository,
	logger ports.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// CreateRequestInput representa os dados para solicitar um serviço
type CreateRequestInput struct {
	ServiceID   string
	RequesterID string
	Message     string
}

// CreateRequest cria uma solicitação. Toda solicitação nasce em "pending".
func (s *RequestService) CreateRequest(ctx context.Context, input CreateRequestInput) (*entities.Request, error) {
	if input.ServiceID == "" {
		return nil, errors.ErrMissingRequiredFields
	}

	service, err := s.serviceRepo.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.ErrServiceNotFound
	}

	request := &entities.Request{
		ServiceID:   input.ServiceID,
		RequesterID: input.RequesterID,
		Message:     input.Message,
		Status:      entities.StatusPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("request created", "request_id", request.ID, "service_id", request.ServiceID)

	return request, nil
}

// GetRequest busca uma solicitação por ID
func (s *RequestService) GetRequest(ctx context.Context, id string) (*entities.Request, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, errors.ErrRequestNotFound
	}
	return request, nil
}

// UpdateStatus aplica uma transição de status validada pela tabela de
// transições permitidas
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (*entities.Request, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, errors.ErrRequestNotFound
	}

	previous := request.Status
	if err := request.Transition(status); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("request status updated",
		"request_id", request.ID,
		"from", string(previous),
		"to", string(request.Status),
	)

	return request, nil
}
