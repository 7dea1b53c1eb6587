package security

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
)

// JWTManager implementa ports.TokenManager usando HMAC-SHA256
type JWTManager struct {
	secret []byte
}

// NewJWTManager cria um novo JWTManager
func NewJWTManager(secret string) ports.TokenManager {
	return &JWTManager{secret: []byte(secret)}
}

type accessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Sign emite um token assinado com expiração
func (m *JWTManager) Sign(claims ports.TokenClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		UserID: claims.UserID,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(m.secret)
}

// Verify valida assinatura e expiração e retorna as claims decodificadas
func (m *JWTManager) Verify(tokenStr string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return &ports.TokenClaims{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}
