package dateinfer

import "unicode/utf8"

// prepare validates and truncates the transcript. When the transcript is
// absent or below MinTranscriptChars it short-circuits with a degraded
// Result and the provider is never called.
func prepare(transcript string) (string, *Result) {
	if len(transcript) < MinTranscriptChars {
		return "", &Result{
			Confidence: ConfidenceLow,
			Reasoning:  ReasonTooShort,
		}
	}

	if len(transcript) > MaxTranscriptChars {
		// Hard cut, not word aware. Splitting mid-word is fine for a
		// heuristic signal, but the cut must not land inside a multibyte
		// rune or the provider would receive invalid UTF-8.
		transcript = transcript[:MaxTranscriptChars]
		for len(transcript) > 0 {
			r, size := utf8.DecodeLastRuneInString(transcript)
			if r != utf8.RuneError || size != 1 {
				break
			}
			transcript = transcript[:len(transcript)-1]
		}
	}

	return transcript, nil
}
