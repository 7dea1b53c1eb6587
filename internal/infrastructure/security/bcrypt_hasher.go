package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
)

// bcryptCost é o fator de custo fixo usado no hash de senhas
const bcryptCost = 10

// BcryptHasher implementa ports.PasswordHasher usando bcrypt
type BcryptHasher struct{}

// NewBcryptHasher cria um novo BcryptHasher
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{}
}

// Hash gera o hash bcrypt da senha em texto plano
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare verifica se a senha em texto plano corresponde ao hash
func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
