package http

import (
	"relationship-os/internal/interaction"
	pkgErrors "relationship-os/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case interaction.ErrInteractionNotFound:
		return pkgErrors.ErrNotFound
	case interaction.ErrPersonNotFound:
		return pkgErrors.NewHTTPError(404, "person not found")
	case interaction.ErrInvalidType:
		return pkgErrors.NewHTTPError(400, "invalid interaction type")
	case interaction.ErrNoSuggestion:
		return pkgErrors.NewHTTPError(502, "no follow-up suggestion produced")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
