package syncin

import "errors"

var (
	ErrSourceRequired      = errors.New("source is required")
	ErrNoItems             = errors.New("no items to ingest")
	ErrExternalIDRequired  = errors.New("external_id is required")
	ErrAudioRequired       = errors.New("audio data or url is required")
	ErrTranscriptionFailed = errors.New("transcription failed")
)
