package dateinfer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantLen    int
		wantShort  bool
	}{
		{
			name:       "empty",
			transcript: "",
			wantShort:  true,
		},
		{
			name:       "just below threshold",
			transcript: strings.Repeat("a", MinTranscriptChars-1),
			wantShort:  true,
		},
		{
			name:       "at threshold",
			transcript: strings.Repeat("a", MinTranscriptChars),
			wantLen:    MinTranscriptChars,
		},
		{
			name:       "within limit",
			transcript: strings.Repeat("a", 500),
			wantLen:    500,
		},
		{
			name:       "at limit",
			transcript: strings.Repeat("a", MaxTranscriptChars),
			wantLen:    MaxTranscriptChars,
		},
		{
			name:       "over limit",
			transcript: strings.Repeat("a", MaxTranscriptChars+1),
			wantLen:    MaxTranscriptChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet, short := prepare(tt.transcript)

			if tt.wantShort {
				if short == nil {
					t.Fatal("expected short-circuit result")
				}
				if short.InferredDate != nil {
					t.Errorf("short-circuit must carry no date")
				}
				if short.Confidence != ConfidenceLow {
					t.Errorf("expected low confidence, got %s", short.Confidence)
				}
				if short.Reasoning != ReasonTooShort {
					t.Errorf("unexpected reasoning %q", short.Reasoning)
				}
				return
			}

			if short != nil {
				t.Fatalf("unexpected short-circuit: %+v", short)
			}
			if len(snippet) != tt.wantLen {
				t.Errorf("expected %d chars, got %d", tt.wantLen, len(snippet))
			}
			if !strings.HasPrefix(tt.transcript, snippet) {
				t.Errorf("snippet must be a prefix of the transcript")
			}
		})
	}
}

func TestPrepareMultibyteBoundary(t *testing.T) {
	// Four-byte runes guarantee the byte cut lands mid-rune for at least
	// one of the offsets below.
	for pad := 0; pad < 4; pad++ {
		transcript := strings.Repeat("a", pad) + strings.Repeat("\U0001F600", MaxTranscriptChars)

		snippet, short := prepare(transcript)
		if short != nil {
			t.Fatalf("pad %d: unexpected short-circuit: %+v", pad, short)
		}
		if len(snippet) > MaxTranscriptChars {
			t.Errorf("pad %d: snippet exceeds limit: %d bytes", pad, len(snippet))
		}
		if !utf8.ValidString(snippet) {
			t.Errorf("pad %d: snippet is not valid UTF-8", pad)
		}
		if !strings.HasPrefix(transcript, snippet) {
			t.Errorf("pad %d: snippet must be a prefix of the transcript", pad)
		}
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		in       string
		fallback Confidence
		want     Confidence
	}{
		{"high", ConfidenceLow, ConfidenceHigh},
		{"HIGH", ConfidenceLow, ConfidenceHigh},
		{"medium", ConfidenceLow, ConfidenceMedium},
		{"low", ConfidenceMedium, ConfidenceLow},
		{"", ConfidenceMedium, ConfidenceMedium},
		{"certain", ConfidenceLow, ConfidenceLow},
	}

	for _, tt := range tests {
		if got := parseConfidence(tt.in, tt.fallback); got != tt.want {
			t.Errorf("parseConfidence(%q, %s) = %s, want %s", tt.in, tt.fallback, got, tt.want)
		}
	}
}
