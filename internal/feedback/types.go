package feedback

import "time"

// Feedback categories.
const (
	CategoryBug     = "bug"
	CategoryFeature = "feature"
	CategoryGeneral = "general"
)

// Feedback is a piece of in-app feedback left by a beta user.
type Feedback struct {
	ID        string
	UserID    string
	Rating    int // 1..5, 0 when not given
	Category  string
	Message   string
	Page      string // app route the feedback was left from
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type SubmitFeedbackInput struct {
	Rating   int
	Category string
	Message  string
	Page     string
}

// ListFeedbackInput bounds the admin listing.
type ListFeedbackInput struct {
	Category string
	Limit    int
	Offset   int
}

// --- UseCase Outputs ---

type SubmitFeedbackOutput struct {
	Feedback Feedback
}

type ListFeedbackOutput struct {
	Items []Feedback
	Total int
}
