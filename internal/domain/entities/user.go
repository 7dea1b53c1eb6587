package entities

import (
	"errors"
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/valueobjects"
)

// User representa um morador ou prestador cadastrado
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Role         Role
	Whatsapp     string
	CEP          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsProvider verifica se o usuário pode anunciar serviços
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
