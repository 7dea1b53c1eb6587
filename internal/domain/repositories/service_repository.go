package repositories

import (
	"context"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// ServiceFilters contém filtros para o diretório de serviços.
// Comparações são exatas (case-sensitive); campo vazio significa "sem filtro".
type ServiceFilters struct {
	Category string // nome da categoria
	Bairro   string // bairro de alguma área de atendimento
}

// ServiceRepository define a interface para persistência de serviços
type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	// FindByID retorna o serviço enriquecido com provider, categoria e áreas
	FindByID(ctx context.Context, id string) (*entities.Service, error)
	// List retorna os serviços que atendem aos filtros, já enriquecidos
	List(ctx context.Context, filters ServiceFilters) ([]*entities.Service, error)
	Update(ctx context.Context, service *entities.Service) error
	Delete(ctx context.Context, id string) error
	CreateArea(ctx context.Context, area *entities.ServiceArea) error
}
