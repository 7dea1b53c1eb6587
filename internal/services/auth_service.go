package services

import (
	"context"
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// TokenTTL é a validade do token de acesso (7 dias)
const TokenTTL = 7 * 24 * time.Hour

// AuthService contém a lógica de autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login autentica por email/senha e emite um token de acesso.
// Email desconhecido e senha incorreta retornam o mesmo erro genérico,
// sem indicar qual campo falhou.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(ports.TokenClaims{
		UserID: user.ID,
		Role:   string(user.Role),
	}, TokenTTL)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return token, user, nil
}

// Verify valida um token e retorna as claims decodificadas
func (s *AuthService) Verify(token string) (*ports.TokenClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errors.ErrUnauthorized
	}
	return claims, nil
}
