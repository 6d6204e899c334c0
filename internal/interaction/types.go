package interaction

import "time"

// Type classifies how the interaction happened.
type Type string

const (
	TypeMeeting Type = "meeting"
	TypeCall    Type = "call"
	TypeText    Type = "text"
	TypeEmail   Type = "email"
	TypeNote    Type = "note"
)

// ValidType reports whether t is a known interaction type.
func ValidType(t Type) bool {
	switch t {
	case TypeMeeting, TypeCall, TypeText, TypeEmail, TypeNote:
		return true
	}
	return false
}

// Interaction is a logged touchpoint with a person. FORD fields carry the
// Family / Occupation / Recreation / Dreams notes the app is organized around.
type Interaction struct {
	ID       string
	UserID   string
	PersonID string

	Type       Type
	Source     string // manual, or the sync agent that pushed it
	ExternalID string // dedupe key within a source

	Title      string
	Content    string
	Summary    string
	Transcript string

	// OccurredAt is when the conversation happened. When absent at creation
	// time and a transcript is available, it is inferred from the transcript;
	// DateConfidence/DateReasoning record how trustworthy that inference is.
	OccurredAt     *time.Time
	DateConfidence string
	DateReasoning  string

	DurationMinutes int

	FordFamily     string
	FordOccupation string
	FordRecreation string
	FordDreams     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInteractionInput struct {
	PersonID        string
	Type            Type
	Source          string
	ExternalID      string
	Title           string
	Content         string
	Summary         string
	Transcript      string
	OccurredAt      *time.Time
	DurationMinutes int
	FordFamily      string
	FordOccupation  string
	FordRecreation  string
	FordDreams      string
}

type ListInteractionsInput struct {
	PersonID string
	Type     Type
	Limit    int
	Offset   int
}

// UpdateFordInput updates the FORD notes and summary of an interaction.
type UpdateFordInput struct {
	ID             string
	Summary        string
	FordFamily     string
	FordOccupation string
	FordRecreation string
	FordDreams     string
}

// --- UseCase Outputs ---

type CreateInteractionOutput struct {
	Interaction Interaction
}

type ListInteractionsOutput struct {
	Interactions []Interaction
	Total        int
	Limit        int
	Offset       int
}

type DetailInteractionOutput struct {
	Interaction Interaction
}

type UpdateFordOutput struct {
	Interaction Interaction
}

// FollowUp is an AI-generated suggestion for the next touchpoint.
type FollowUp struct {
	Suggestion string
	Timing     string // relative phrase as produced, e.g. "in 3 days"
	Topics     []string
	RemindAt   *time.Time // Timing resolved against today
	// CalendarEventLink is set when a reminder event was created.
	CalendarEventLink string
}

type SuggestFollowUpOutput struct {
	FollowUp FollowUp
}
