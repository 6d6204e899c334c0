package http

import (
	"relationship-os/internal/person"
	pkgErrors "relationship-os/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500 so internals never leak.
func (h *handler) mapError(err error) error {
	switch err {
	case person.ErrPersonNotFound:
		return pkgErrors.ErrNotFound
	case person.ErrNameRequired:
		return pkgErrors.NewHTTPError(400, "person name is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
