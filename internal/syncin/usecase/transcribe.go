package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"relationship-os/internal/interaction"
	interactionRepo "relationship-os/internal/interaction/repository"
	"relationship-os/internal/model"
	"relationship-os/internal/syncin"
	"relationship-os/pkg/llmprovider"
)

const (
	// transcribeSystemInstruction keeps the model from summarizing or
	// annotating; downstream date inference needs the verbatim conversation.
	transcribeSystemInstruction = `You are a transcription service. Transcribe the audio recording verbatim.
Output only the transcript text. Do not summarize, translate, annotate, or add speaker commentary.
If parts are inaudible, write [inaudible].`

	transcribeMaxTokens = 8192

	defaultAudioMIMEType = "audio/mpeg"

	audioFetchTimeout = 60 * time.Second

	// maxAudioBytes bounds URL-fetched recordings.
	maxAudioBytes = 25 << 20
)

// Transcribe turns an agent-pushed recording into a transcript and stores it
// as an interaction. Dedupe and person matching work exactly as in Push; when
// the agent did not supply a recording timestamp the conversation date is
// inferred from the transcript.
func (uc *implUseCase) Transcribe(ctx context.Context, sc model.Scope, input syncin.TranscribeInput) (syncin.TranscribeOutput, error) {
	if strings.TrimSpace(input.Source) == "" {
		return syncin.TranscribeOutput{}, syncin.ErrSourceRequired
	}
	if input.ExternalID == "" {
		return syncin.TranscribeOutput{}, syncin.ErrExternalIDRequired
	}
	if input.AudioBase64 == "" && input.AudioURL == "" {
		return syncin.TranscribeOutput{}, syncin.ErrAudioRequired
	}
	if uc.llm == nil {
		uc.l.Warnf(ctx, "syncin.uc.Transcribe: no llm configured")
		return syncin.TranscribeOutput{}, syncin.ErrTranscriptionFailed
	}

	existing, err := uc.interactionRepo.GetOneInteraction(ctx, interactionRepo.GetOneInteractionOptions{
		UserID:     sc.UserID,
		Source:     input.Source,
		ExternalID: input.ExternalID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.Transcribe dedupe: %v", err)
		return syncin.TranscribeOutput{}, err
	}
	if existing.ID != "" {
		return syncin.TranscribeOutput{
			Status:           syncin.StatusDuplicate,
			InteractionID:    existing.ID,
			PersonID:         existing.PersonID,
			TranscriptLength: len(existing.Transcript),
		}, nil
	}

	audio, err := uc.loadAudio(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.Transcribe audio: %v", err)
		return syncin.TranscribeOutput{}, syncin.ErrAudioRequired
	}

	transcript, err := uc.transcribeAudio(ctx, audio, input.MIMEType)
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.Transcribe llm: %v", err)
		return syncin.TranscribeOutput{}, syncin.ErrTranscriptionFailed
	}

	personID, err := uc.resolvePerson(ctx, sc, input.PersonHint, nil)
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.Transcribe person: %v", err)
		return syncin.TranscribeOutput{}, err
	}

	opt := interactionRepo.CreateInteractionOptions{
		UserID:     sc.UserID,
		PersonID:   personID,
		Type:       interaction.TypeCall,
		Source:     input.Source,
		ExternalID: input.ExternalID,
		Transcript: transcript,
		OccurredAt: input.Timestamp,
	}

	if opt.OccurredAt == nil && uc.inferrer != nil {
		inferred := uc.inferrer.InferAt(ctx, transcript, uc.now())
		opt.OccurredAt = inferred.InferredDate
		opt.DateConfidence = string(inferred.Confidence)
		opt.DateReasoning = inferred.Reasoning
	}

	it, err := uc.interactionRepo.CreateInteraction(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.Transcribe insert: %v", err)
		return syncin.TranscribeOutput{}, err
	}

	if uc.tracker != nil {
		uc.tracker.Track(ctx, sc, "sync_transcribe", map[string]any{
			"source":            input.Source,
			"transcript_length": len(transcript),
		})
	}

	return syncin.TranscribeOutput{
		Status:           syncin.StatusCreated,
		InteractionID:    it.ID,
		PersonID:         personID,
		TranscriptLength: len(transcript),
	}, nil
}

// loadAudio returns the base64 payload to send to the provider, fetching and
// encoding the recording when only a URL was supplied.
func (uc *implUseCase) loadAudio(ctx context.Context, input syncin.TranscribeInput) (string, error) {
	if input.AudioBase64 != "" {
		if _, err := base64.StdEncoding.DecodeString(input.AudioBase64); err != nil {
			return "", fmt.Errorf("invalid base64 audio: %w", err)
		}
		return input.AudioBase64, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, input.AudioURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := uc.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("audio fetch returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// transcribeAudio asks the provider chain for a verbatim transcript.
func (uc *implUseCase) transcribeAudio(ctx context.Context, audioBase64, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = defaultAudioMIMEType
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: transcribeSystemInstruction}},
		},
		Messages: []llmprovider.Message{{
			Role: "user",
			Parts: []llmprovider.Part{{
				InlineData: &llmprovider.Blob{MIMEType: mimeType, Data: audioBase64},
			}},
		}},
		MaxTokens: transcribeMaxTokens,
	})
	if err != nil {
		return "", err
	}

	transcript := strings.TrimSpace(resp.Text())
	if transcript == "" {
		return "", fmt.Errorf("empty transcript")
	}
	return transcript, nil
}
