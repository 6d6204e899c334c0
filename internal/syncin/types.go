package syncin

import "time"

// PersonHint identifies who an incoming item is about. Any field may be
// empty; matching prefers phone, then email, then name.
type PersonHint struct {
	Name  string
	Phone string
	Email string
}

// PushItem is a single record pushed by a local sync agent.
type PushItem struct {
	ExternalID      string
	Type            string // meeting, call, text, email, note
	Title           string
	Content         string
	Summary         string
	Transcript      string
	Timestamp       *time.Time
	DurationMinutes int
	Participants    []string
	PersonHint      PersonHint
}

// PushInput is a batch of items from one agent run.
type PushInput struct {
	Source   string
	SyncType string
	Items    []PushItem
	Metadata map[string]any
}

// Item result statuses.
const (
	StatusCreated   = "created"
	StatusDuplicate = "duplicate"
	StatusError     = "error"
)

// ItemResult reports what happened to one pushed item.
type ItemResult struct {
	ExternalID    string
	Status        string
	InteractionID string
	PersonID      string
	Error         string
}

// PushOutput summarizes a processed batch.
type PushOutput struct {
	BatchID    string
	Received   int
	Created    int
	Duplicates int
	Errors     int
	Results    []ItemResult
}

// TranscribeInput is a single audio recording pushed for transcription. The
// audio arrives base64-encoded or as a URL to fetch.
type TranscribeInput struct {
	Source      string
	ExternalID  string
	AudioBase64 string
	AudioURL    string
	MIMEType    string // defaults to audio/mpeg
	Timestamp   *time.Time
	PersonHint  PersonHint
}

// TranscribeOutput reports the stored interaction and transcript size.
type TranscribeOutput struct {
	Status           string
	InteractionID    string
	PersonID         string
	TranscriptLength int
}

// ListBatchesInput bounds the admin batch listing.
type ListBatchesInput struct {
	UserID string
	Source string
	Limit  int
}

// Batch is the persisted record of a sync push.
type Batch struct {
	ID         string
	UserID     string
	Source     string
	SyncType   string
	Received   int
	Created    int
	Duplicates int
	Errors     int
	CreatedAt  time.Time
}
