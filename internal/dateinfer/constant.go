package dateinfer

// Log prefixes
const (
	LogPrefixInfer = "internal.dateinfer.Infer"
)

// Transcript preprocessing bounds
const (
	// MinTranscriptChars is the minimum transcript length carrying enough
	// linguistic signal for reliable dating.
	MinTranscriptChars = 50

	// MaxTranscriptChars bounds the text sent to the provider. Temporal cues
	// concentrate near the start of a transcript, so a hard prefix cut is
	// acceptable.
	MaxTranscriptChars = 2000
)

// Provider call configuration
const (
	InferTemperature = 0.1
	InferMaxTokens   = 200
)

// Fixed reasoning strings for degraded outcomes
const (
	ReasonTooShort     = "Transcript too short"
	ReasonNoResponse   = "No response from AI"
	ReasonUndetermined = "Could not determine date"
	ReasonFailed       = "Inference failed"
)
