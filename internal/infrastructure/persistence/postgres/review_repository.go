package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	model := &ReviewModel{
		ID:        review.ID,
		ServiceID: review.ServiceID,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	review.ID = model.ID
	review.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *ReviewRepository) ListByService(ctx context.Context, serviceID string) ([]*entities.Review, error) {
	var models []*ReviewModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("service_id = ?", serviceID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(models))
	for _, model := range models {
		reviews = append(reviews, &entities.Review{
			ID:        model.ID,
			ServiceID: model.ServiceID,
			Rating:    model.Rating,
			Comment:   model.Comment,
			CreatedAt: time.Unix(model.CreatedAt, 0),
		})
	}
	return reviews, nil
}
