package repository

// CreateFeedbackOptions holds parameters for inserting new feedback.
// ID is assigned by the caller (uuid).
type CreateFeedbackOptions struct {
	ID       string
	UserID   string
	Rating   int
	Category string
	Message  string
	Page     string
}

// ListFeedbackOptions holds filter and pagination parameters.
type ListFeedbackOptions struct {
	Category string
	Limit    int
	Offset   int
}
