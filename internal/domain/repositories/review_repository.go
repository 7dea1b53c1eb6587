package repositories

import (
	"context"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// ReviewRepository define a interface para persistência de avaliações
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	ListByService(ctx context.Context, serviceID string) ([]*entities.Review, error)
}
