package http

import (
	"relationship-os/internal/syncin"
	pkgErrors "relationship-os/pkg/errors"
)

// Agent bodies are bounded so a runaway agent cannot exhaust memory.
// Transcribe bodies carry base64 audio, so they get a larger cap.
const (
	maxPushBodyBytes       = 10 << 20 // 10 MiB
	maxTranscribeBodyBytes = 40 << 20 // 40 MiB
)

var (
	errSignature = pkgErrors.NewHTTPError(401, "invalid signature")
	errDisabled  = pkgErrors.NewHTTPError(503, "sync ingestion disabled")
	errIPDenied  = pkgErrors.NewHTTPError(403, "ip not allowed")
	errRateLimit = pkgErrors.NewHTTPError(429, "rate limit exceeded")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case syncin.ErrSourceRequired:
		return pkgErrors.NewHTTPError(400, "source is required")
	case syncin.ErrNoItems:
		return pkgErrors.NewHTTPError(400, "items are required")
	case syncin.ErrExternalIDRequired:
		return pkgErrors.NewHTTPError(400, "external_id is required")
	case syncin.ErrAudioRequired:
		return pkgErrors.NewHTTPError(400, "audio_base64 or audio_url is required")
	case syncin.ErrTranscriptionFailed:
		return pkgErrors.NewHTTPError(502, "transcription failed")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
