package http

import (
	"relationship-os/internal/feedback"
	pkgErrors "relationship-os/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case feedback.ErrMessageRequired:
		return pkgErrors.NewHTTPError(400, "message is required")
	case feedback.ErrInvalidRating:
		return pkgErrors.NewHTTPError(400, "rating must be between 1 and 5")
	case feedback.ErrInvalidCategory:
		return pkgErrors.NewHTTPError(400, "unknown feedback category")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
