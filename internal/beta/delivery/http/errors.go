package http

import (
	"relationship-os/internal/beta"
	pkgErrors "relationship-os/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case beta.ErrEntryNotFound:
		return pkgErrors.ErrNotFound
	case beta.ErrDuplicateEmail:
		return pkgErrors.NewHTTPError(409, "email already whitelisted")
	case beta.ErrInvalidEmail:
		return pkgErrors.NewHTTPError(400, "invalid email")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
