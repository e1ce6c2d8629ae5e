package errs

import "errors"

// Categories shared by the usecase and handler layers; concrete errors are marked with one of these.
var (
	// Access errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Backend errors
	ErrBackendRejected    = errors.New("backend rejected the request")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrUnsupported        = errors.New("operation not supported by the active transport")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
