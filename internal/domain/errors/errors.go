package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound         = errors.New("error.user_not_found")
	ErrGymNotFound          = errors.New("error.gym_not_found")
	ErrMachineNotFound      = errors.New("error.machine_not_found")
	ErrTrainerNotFound      = errors.New("error.trainer_not_found")
	ErrEmailAlreadyExists   = errors.New("error.email_already_exists")
	ErrTrainerProfileExists = errors.New("error.trainer_profile_exists")
	ErrGithubAlreadyLinked  = errors.New("error.github_already_linked")
	ErrInventoryEntryExists = errors.New("error.inventory_entry_exists")
	ErrInvalidCredentials   = errors.New("error.invalid_credentials")
	ErrUnauthorized         = errors.New("error.unauthorized")
	ErrForbidden            = errors.New("error.forbidden")
)

// Domain errors
var (
	ErrInvalidEmail      = errors.New("error.invalid_email")
	ErrInvalidIdentifier = errors.New("error.invalid_identifier")
	ErrInvalidQuantity   = errors.New("error.invalid_quantity")
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
