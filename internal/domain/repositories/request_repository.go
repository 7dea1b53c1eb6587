package repositories

import (
	"context"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// RequestRepository define a interface para persistência de solicitações
type RequestRepository interface {
	Create(ctx context.Context, request *entities.Request) error
	FindByID(ctx context.Context, id string) (*entities.Request, error)
	Update(ctx context.Context, request *entities.Request) error
}
