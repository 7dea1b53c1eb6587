package ports

import "time"

// PasswordHasher define a interface para hash de senha (one-way, com salt)
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// TokenClaims são os dados carregados em um token de acesso
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenManager define a interface para emissão e verificação de tokens
type TokenManager interface {
	Sign(claims TokenClaims, ttl time.Duration) (string, error)
	Verify(token string) (*TokenClaims, error)
}
