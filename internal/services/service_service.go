package services

import (
	"context"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// ServiceService contém a lógica do diretório de serviços
type ServiceService struct {
	serviceRepo  repositories.ServiceRepository
	categoryRepo repositories.CategoryRepository
	logger       ports.Logger
}

// NewServiceService cria um novo ServiceService
func NewServiceService(
	serviceRepo repositories.ServiceRepository,
	categoryRepo repositories.CategoryRepository,
	logger ports.Logger,
) *ServiceService {
	return &ServiceService{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListServices retorna os serviços que atendem aos filtros, enriquecidos com
// prestador, categoria e áreas. Sem filtros, retorna todos. Filtros combinados
// têm semântica AND; comparações são exatas e case-sensitive.
func (s *ServiceService) ListServices(ctx context.Context, filters repositories.ServiceFilters) ([]*entities.Service, error) {
	return s.serviceRepo.List(ctx, filters)
}

// GetService busca um serviço por ID com relações carregadas
func (s *ServiceService) GetService(ctx context.Context, id string) (*entities.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.ErrServiceNotFound
	}
	return service, nil
}

// CreateServiceInput representa os dados para anunciar um serviço
type CreateServiceInput struct {
	Title        string
	Description  string
	PriceRange   string
	ProviderID   string
	CategoryName string
	Areas        []entities.ServiceArea
}

// CreateService anuncia um novo serviço para o prestador informado
func (s *ServiceService) CreateService(ctx context.Context, input CreateServiceInput) (*entities.Service, error) {
	if input.Title == "" || input.CategoryName == "" {
		return nil, errors.ErrMissingRequiredFields
	}

	category, err := s.categoryRepo.FindOrCreateByName(ctx, input.CategoryName)
	if err != nil {
		return nil, err
	}

	priceRange := input.PriceRange
	if priceRange == "" {
		priceRange = entities.PriceNegotiable
	}

	service := &entities.Service{
		Title:       input.Title,
		Description: input.Description,
		PriceRange:  priceRange,
		ProviderID:  input.ProviderID,
		CategoryID:  category.ID,
	}

	if err := service.Validate(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	for i := range input.Areas {
		area := input.Areas[i]
		area.ServiceID = service.ID
		if area.Neighborhood == "" {
			area.Neighborhood = entities.NeighborhoodNotInformed
		}
		if err := s.serviceRepo.CreateArea(ctx, &area); err != nil {
			return nil, err
		}
	}

	s.logger.Info("service created", "service_id", service.ID, "provider_id", service.ProviderID)

	return s.serviceRepo.FindByID(ctx, service.ID)
}

// UpdateServiceInput representa os dados de atualização de um serviço
type UpdateServiceInput struct {
	Title       *string
	Description *string
	PriceRange  *string
}

// UpdateService atualiza os campos informados de um serviço existente
func (s *ServiceService) UpdateService(ctx context.Context, id string, input UpdateServiceInput) (*entities.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.ErrServiceNotFound
	}

	if input.Title != nil {
		service.Title = *input.Title
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.PriceRange != nil {
		service.PriceRange = *input.PriceRange
	}

	if err := service.Validate(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	return s.serviceRepo.FindByID(ctx, id)
}

// DeleteService remove um serviço do diretório
func (s *ServiceService) DeleteService(ctx context.Context, id string) error {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return errors.ErrServiceNotFound
	}
	return s.serviceRepo.Delete(ctx, id)
}
