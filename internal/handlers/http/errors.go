package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/handlers/dto"
)

// respondError é a fronteira única de mapeamento de erros de domínio para
// status HTTP. Tudo que os serviços deixam subir passa por aqui; apenas as
// falhas de provisionamento do registro são absorvidas antes de chegar.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrMissingRequiredFields),
		errs.Is(err, errors.ErrInvalidEmail),
		errs.Is(err, errors.ErrInvalidStatus),
		errs.Is(err, errors.ErrInvalidStatusTransition):
		response := dto.NewErrorResponseI18n(c, errors.ProblemTypeValidation,
			"error.validation.title", err.Error(), http.StatusBadRequest)
		c.JSON(http.StatusBadRequest, response)

	case errs.Is(err, errors.ErrEmailAlreadyExists):
		response := dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
		c.JSON(http.StatusConflict, response)

	case errs.Is(err, errors.ErrProviderAlreadyHasService):
		response := dto.ConflictErrorResponseI18n(c, "error.provider_already_has_service")
		c.JSON(http.StatusConflict, response)

	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))

	case errs.Is(err, errors.ErrInvalidCredentials):
		response := dto.UnauthorizedErrorResponseI18n(c, "error.invalid_credentials")
		c.JSON(http.StatusUnauthorized, response)

	case errs.Is(err, errors.ErrUnauthorized):
		response := dto.UnauthorizedErrorResponseI18n(c, "error.invalid_token")
		c.JSON(http.StatusUnauthorized, response)

	case errs.Is(err, errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))

	case errs.Is(err, errors.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Service"))

	case errs.Is(err, errors.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Request"))

	default:
		// 500 genérico: nenhum detalhe interno vaza para o cliente
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
