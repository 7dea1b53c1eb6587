package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// RequestRepository implementa repositories.RequestRepository
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository cria um novo RequestRepository
func NewRequestRepository(db *gorm.DB) repositories.RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, request *entities.Request) error {
	model := toRequestModel(request)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	request.ID = model.ID
	request.CreatedAt = time.Unix(model.CreatedAt, 0)
	request.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*entities.Request, error) {
	var model RequestModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toRequestEntity(&model), nil
}

func (r *RequestRepository) Update(ctx context.Context, request *entities.Request) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&RequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"status":  string(request.Status),
			"message": request.Message,
		}).Error
}

// Conversores
func toRequestModel(request *entities.Request) *RequestModel {
	return &RequestModel{
		ID:          request.ID,
		ServiceID:   request.ServiceID,
		RequesterID: request.RequesterID,
		Message:     request.Message,
		Status:      string(request.Status),
	}
}

func toRequestEntity(model *RequestModel) *entities.Request {
	return &entities.Request{
		ID:          model.ID,
		ServiceID:   model.ServiceID,
		RequesterID: model.RequesterID,
		Message:     model.Message,
		Status:      entities.RequestStatus(model.Status),
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
