package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound              = errors.New("error.user_not_found")
	ErrServiceNotFound           = errors.New("error.service_not_found")
	ErrRequestNotFound           = errors.New("error.request_not_found")
	ErrEmailAlreadyExists        = errors.New("error.email_already_exists")
	ErrProviderAlreadyHasService = errors.New("error.provider_already_has_service")
	ErrInvalidCredentials        = errors.New("error.invalid_credentials")
	ErrUnauthorized              = errors.New("error.unauthorized")
	ErrForbidden                 = errors.New("error.forbidden")
)

// Domain errors
var (
	ErrInvalidEmail            = errors.New("error.invalid_email")
	ErrMissingRequiredFields   = errors.New("error.missing_required_fields")
	ErrInvalidStatus           = errors.New("error.invalid_status")
	ErrInvalidStatusTransition = errors.New("error.invalid_status_transition")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// ProvisioningError marca falhas na criação do perfil de prestador durante o
// registro. Nunca chega ao handler HTTP: é logado e absorvido pelo workflow.
type ProvisioningError struct {
	Step string // "category", "service" ou "area"
	Err  error
}

func (e *ProvisioningError) Error() string {
	return "provisioning " + e.Step + ": " + e.Err.Error()
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
