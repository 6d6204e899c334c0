package repository

import (
	"context"

	"relationship-os/internal/feedback"
)

// Repository is the composed interface for the feedback data store.
type Repository interface {
	FeedbackRepository
}

// FeedbackRepository defines all data access methods for the Feedback entity.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, opt CreateFeedbackOptions) (feedback.Feedback, error)
	ListFeedback(ctx context.Context, opt ListFeedbackOptions) ([]feedback.Feedback, int, error)
}
