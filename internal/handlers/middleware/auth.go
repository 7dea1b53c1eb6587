package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/infrastructure/i18n"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

const (
	// UserIDContextKey guarda o id do usuário autenticado no contexto do Gin
	UserIDContextKey = "auth_user_id"
	// RoleContextKey guarda o role do usuário autenticado
	RoleContextKey = "auth_role"
)

// AuthMiddleware valida o token Bearer das rotas protegidas
type AuthMiddleware struct {
	authService *services.AuthService
	i18nService *i18n.Service
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService, i18nService *i18n.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		i18nService: i18nService,
	}
}

// RequireAuth exige um token válido. Token ausente, malformado, expirado ou
// com assinatura inválida resulta em 401; caso contrário as claims ficam
// disponíveis no contexto da requisição.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			m.abortUnauthorized(c)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := m.authService.Verify(token)
		if err != nil {
			m.abortUnauthorized(c)
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(RoleContextKey, claims.Role)

		c.Next()
	}
}

// abortUnauthorized responde 401 com um problem document RFC 7807.
// Montado aqui (e não via dto) para evitar ciclo de import com o pacote dto.
func (m *AuthMiddleware) abortUnauthorized(c *gin.Context) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	lang := c.GetString(LanguageContextKey)
	if lang == "" {
		lang = m.i18nService.GetDefaultLanguage()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"type":     baseURL + errors.ProblemTypeUnauthorized,
		"title":    m.i18nService.T(lang, "error.unauthorized.title"),
		"status":   http.StatusUnauthorized,
		"detail":   m.i18nService.T(lang, "error.invalid_token"),
		"instance": c.Request.URL.Path,
	})
}
