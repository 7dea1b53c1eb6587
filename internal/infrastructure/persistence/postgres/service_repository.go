package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	domainerrors "github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// ServiceRepository implementa repositories.ServiceRepository
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository cria um novo ServiceRepository
func NewServiceRepository(db *gorm.DB) repositories.ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	model := toServiceModel(service)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		// O índice único em provider_id limita cada prestador a um serviço
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrProviderAlreadyHasService
		}
		return err
	}

	service.ID = model.ID
	service.CreatedAt = time.Unix(model.CreatedAt, 0)
	service.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

// FindByID retorna o serviço com provider, categoria e áreas carregados
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*entities.Service, error) {
	var model ServiceModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Provider").Preload("Category").Preload("Areas").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toServiceEntity(&model)
}

// List retorna os serviços que atendem aos filtros, enriquecidos.
// Filtros combinados têm semântica AND; comparações são exatas.
func (r *ServiceRepository) List(ctx context.Context, filters repositories.ServiceFilters) ([]*entities.Service, error) {
	var models []*ServiceModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ServiceModel{}).
		Preload("Provider").
		Preload("Category").
		Preload("Areas").
		Order("services.created_at ASC")

	if filters.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = services.category_id").
			Where("categories.name = ?", filters.Category)
	}

	if filters.Bairro != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM service_areas WHERE service_areas.service_id = services.id AND service_areas.neighborhood = ?)",
			filters.Bairro,
		)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return toServiceEntities(models)
}

func (r *ServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"title":       service.Title,
			"description": service.Description,
			"price_range": service.PriceRange,
			"category_id": service.CategoryID,
		}).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	// Remove as áreas junto com o serviço
	if err := db.Where("service_id = ?", id).Delete(&ServiceAreaModel{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&ServiceModel{}).Error
}

func (r *ServiceRepository) CreateArea(ctx context.Context, area *entities.ServiceArea) error {
	model := &ServiceAreaModel{
		ID:           area.ID,
		ServiceID:    area.ServiceID,
		City:         area.City,
		Neighborhood: area.Neighborhood,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	area.ID = model.ID
	return nil
}

// Conversores
func toServiceModel(service *entities.Service) *ServiceModel {
	return &ServiceModel{
		ID:          service.ID,
		Title:       service.Title,
		Description: service.Description,
		PriceRange:  service.PriceRange,
		ProviderID:  service.ProviderID,
		CategoryID:  service.CategoryID,
	}
}

func toServiceEntity(model *ServiceModel) (*entities.Service, error) {
	service := &entities.Service{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		PriceRange:  model.PriceRange,
		ProviderID:  model.ProviderID,
		CategoryID:  model.CategoryID,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}

	if model.Provider.ID != "" {
		provider, err := toUserEntity(&model.Provider)
		if err != nil {
			return nil, err
		}
		service.Provider = provider
	}

	if model.Category.ID != "" {
		service.Category = toCategoryEntity(&model.Category)
	}

	service.Areas = make([]entities.ServiceArea, 0, len(model.Areas))
	for _, area := range model.Areas {
		service.Areas = append(service.Areas, entities.ServiceArea{
			ID:           area.ID,
			ServiceID:    area.ServiceID,
			City:         area.City,
			Neighborhood: area.Neighborhood,
		})
	}

	return service, nil
}

func toServiceEntities(models []*ServiceModel) ([]*entities.Service, error) {
	services := make([]*entities.Service, 0, len(models))
	for _, model := range models {
		service, err := toServiceEntity(model)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}
