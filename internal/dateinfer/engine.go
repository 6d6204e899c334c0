package dateinfer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"relationship-os/pkg/datemath"
	"relationship-os/pkg/llmprovider"
	"relationship-os/pkg/log"
)

// Generator is the slice of the LLM provider layer the engine needs. The
// llmprovider.Manager satisfies it; tests inject fakes returning canned
// structured payloads.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Engine infers when a logged conversation occurred from its transcript.
// Every failure mode degrades to a low-confidence, date-absent Result; the
// engine never returns an error.
type Engine struct {
	llm Generator
	l   log.Logger
	now func() time.Time
}

// New creates a new inference Engine. now may be nil, in which case
// time.Now is used.
func New(llm Generator, l log.Logger, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		llm: llm,
		l:   l,
		now: now,
	}
}

// Infer runs inference with the engine clock's current time as the anchor.
func (e *Engine) Infer(ctx context.Context, transcript string) Result {
	return e.InferAt(ctx, transcript, e.now())
}

// InferAt runs inference against an explicit anchor date (the reference
// "today" relative offsets are resolved from).
func (e *Engine) InferAt(ctx context.Context, transcript string, anchor time.Time) Result {
	snippet, short := prepare(transcript)
	if short != nil {
		return *short
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: buildSystemInstruction(anchor)}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: snippet}}},
		},
		Temperature: InferTemperature,
		MaxTokens:   InferMaxTokens,
		JSONOutput:  true,
	}

	resp, err := e.llm.GenerateContent(ctx, req)
	if err != nil {
		e.l.Warnf(ctx, "%s: provider call failed: %v", LogPrefixInfer, err)
		return Result{Confidence: ConfidenceLow, Reasoning: ReasonFailed}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return Result{Confidence: ConfidenceLow, Reasoning: ReasonNoResponse}
	}

	payload, err := parsePayload(text)
	if err != nil {
		e.l.Warnf(ctx, "%s: unparseable response: %v", LogPrefixInfer, err)
		return Result{Confidence: ConfidenceLow, Reasoning: ReasonFailed}
	}

	if payload.DaysAgo == nil {
		return Result{
			Confidence: parseConfidence(payload.Confidence, ConfidenceLow),
			Reasoning:  fallbackReasoning(payload.Reasoning, ReasonUndetermined),
		}
	}

	daysAgo := *payload.DaysAgo
	if daysAgo < 0 {
		// A buggy provider response must not date the conversation in the
		// future; clamp to the anchor day.
		e.l.Warnf(ctx, "%s: negative days_ago %d clamped to 0", LogPrefixInfer, daysAgo)
		daysAgo = 0
	}

	inferred := datemath.DaysBefore(anchor, daysAgo)
	return Result{
		InferredDate: &inferred,
		Confidence:   parseConfidence(payload.Confidence, ConfidenceMedium),
		Reasoning:    fallbackReasoning(payload.Reasoning, fmt.Sprintf("Inferred %d days ago", daysAgo)),
	}
}

// parsePayload decodes the provider's structured response, tolerating
// markdown code fences around the JSON body.
func parsePayload(text string) (inferredPayload, error) {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var payload inferredPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return inferredPayload{}, err
	}
	return payload, nil
}

func fallbackReasoning(reasoning, fallback string) string {
	if strings.TrimSpace(reasoning) == "" {
		return fallback
	}
	return reasoning
}
