package dateinfer

import (
	"strings"
	"time"
)

// Confidence is the categorical reliability label attached to an inference.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"   // explicit temporal statement found
	ConfidenceMedium Confidence = "medium" // implied/indirect cue
	ConfidenceLow    Confidence = "low"    // uncertain, or the call failed
)

// Result is the outcome of a conversation date inference. It has no identity
// and is never persisted here; the caller decides whether to store it.
type Result struct {
	// InferredDate is the absolute date the conversation occurred, normalized
	// to local noon. Nil when no determination could be made.
	InferredDate *time.Time

	// Confidence is always populated, regardless of resolution success.
	Confidence Confidence

	// Reasoning is a short human-readable justification. Never empty. For
	// auditing and debugging only, not meant to be parsed.
	Reasoning string
}

// inferredPayload is the structured response shape requested from the
// provider. DaysAgo is a pointer so that JSON null survives decoding.
type inferredPayload struct {
	DaysAgo    *int   `json:"days_ago"`
	Confidence string `json:"confidence"`
	Reasoning  string `json:"reasoning"`
}

// parseConfidence maps the provider's confidence string onto a Confidence,
// falling back to the given default on anything unrecognized.
func parseConfidence(s string, fallback Confidence) Confidence {
	switch c := Confidence(strings.ToLower(strings.TrimSpace(s))); c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return c
	}
	return fallback
}
