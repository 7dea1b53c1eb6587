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

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindOrCreateByName faz upsert da categoria pela chave única name
func (r *CategoryRepository) FindOrCreateByName(ctx context.Context, name string) (*entities.Category, error) {
	db := dbFromContext(ctx, r.db)

	var model CategoryModel
	err := db.Where("name = ?", name).
		Attrs(CategoryModel{ID: uuid.NewString()}).
		FirstOrCreate(&model, CategoryModel{Name: name}).Error
	if err != nil {
		return nil, err
	}

	return toCategoryEntity(&model), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	var model CategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toCategoryEntity(&model), nil
}

func toCategoryEntity(model *CategoryModel) *entities.Category {
	return &entities.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}
}
