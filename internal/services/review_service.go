package services

import (
	"context"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// ReviewService contém a lógica de avaliações de serviços
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	serviceRepo repositories.ServiceRepository
	logger      ports.Logger
}

// NewReviewService cria um novo ReviewService
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	serviceRepo repositories.ServiceRepository,
	logger ports.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// CreateReviewInput representa os dados de uma avaliação
type CreateReviewInput struct {
	ServiceID string
	Rating    int
	Comment   string
}

// CreateReview registra uma avaliação para um serviço existente
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*entities.Review, error) {
	service, err := s.serviceRepo.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, errors.ErrServiceNotFound
	}

	review := &entities.Review{
		ServiceID: input.ServiceID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review created", "review_id", review.ID, "service_id", review.ServiceID)

	return review, nil
}

// ListByService lista as avaliações de um serviço
func (s *ReviewService) ListByService(ctx context.Context, serviceID string) ([]*entities.Review, error) {
	return s.reviewRepo.ListByService(ctx, serviceID)
}
