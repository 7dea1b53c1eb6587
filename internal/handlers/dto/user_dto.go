package dto

import (
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// UserResponse representa a resposta de um usuário.
// O hash de senha nunca aparece aqui.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Whatsapp  string    `json:"whatsapp,omitempty"`
	CEP       string    `json:"cep,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		Whatsapp:  user.Whatsapp,
		CEP:       user.CEP,
		CreatedAt: user.CreatedAt,
	}
}
