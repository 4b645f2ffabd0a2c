package errs

import "errors"

// Category sentinels. Usecases Mark their specific errors with one of these
// so the handler layer can pick a status code with errs.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrConflict      = errors.New("conflict")
	ErrForbidden     = errors.New("forbidden")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
