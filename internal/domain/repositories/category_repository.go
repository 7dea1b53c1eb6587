package repositories

import (
	"context"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// CategoryRepository define a interface para persistência de categorias
type CategoryRepository interface {
	// FindOrCreateByName faz upsert pela chave única name
	FindOrCreateByName(ctx context.Context, name string) (*entities.Category, error)
	FindByID(ctx context.Context, id string) (*entities.Category, error)
}
