package services

import "errors"

// Business errors returned by the catalog services. They are caller-facing
// and never retried; match them with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateName        = errors.New("category already exists")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrReferencedByListings = errors.New("category is referenced by listings")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrValidation           = errors.New("invalid input")
)

// isBusinessError reports whether err is one of the caller-facing errors above
func isBusinessError(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrDuplicateName,
		ErrDuplicateUsername,
		ErrReferencedByListings,
		ErrInvalidCredentials,
		ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
