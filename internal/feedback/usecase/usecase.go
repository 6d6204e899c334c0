package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"relationship-os/internal/analytics"
	"relationship-os/internal/feedback"
	"relationship-os/internal/feedback/repository"
	"relationship-os/internal/model"
	"relationship-os/pkg/log"
)

// implUseCase is the private implementation of feedback.UseCase.
type implUseCase struct {
	repo    repository.Repository
	tracker analytics.Tracker
	l       log.Logger
}

// New creates a new feedback UseCase implementation. tracker may be nil.
func New(repo repository.Repository, tracker analytics.Tracker, l log.Logger) feedback.UseCase {
	return &implUseCase{
		repo:    repo,
		tracker: tracker,
		l:       l,
	}
}

func validCategory(c string) bool {
	switch c {
	case feedback.CategoryBug, feedback.CategoryFeature, feedback.CategoryGeneral:
		return true
	}
	return false
}

// Submit records feedback from the calling user.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input feedback.SubmitFeedbackInput) (feedback.SubmitFeedbackOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return feedback.SubmitFeedbackOutput{}, feedback.ErrMessageRequired
	}
	if input.Rating != 0 && (input.Rating < 1 || input.Rating > 5) {
		return feedback.SubmitFeedbackOutput{}, feedback.ErrInvalidRating
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = feedback.CategoryGeneral
	}
	if !validCategory(category) {
		return feedback.SubmitFeedbackOutput{}, feedback.ErrInvalidCategory
	}

	f, err := uc.repo.CreateFeedback(ctx, repository.CreateFeedbackOptions{
		ID:       uuid.NewString(),
		UserID:   sc.UserID,
		Rating:   input.Rating,
		Category: category,
		Message:  message,
		Page:     input.Page,
	})
	if err != nil {
		uc.l.Errorf(ctx, "feedback.uc.Submit: %v", err)
		return feedback.SubmitFeedbackOutput{}, err
	}

	if uc.tracker != nil {
		uc.tracker.Track(ctx, sc, "feedback_submitted", map[string]any{
			"category": category,
			"rating":   input.Rating,
			"page":     input.Page,
		})
	}

	return feedback.SubmitFeedbackOutput{Feedback: f}, nil
}

// List returns submitted feedback for the admin review view.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input feedback.ListFeedbackInput) (feedback.ListFeedbackOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.repo.ListFeedback(ctx, repository.ListFeedbackOptions{
		Category: input.Category,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "feedback.uc.List: %v", err)
		return feedback.ListFeedbackOutput{}, err
	}

	return feedback.ListFeedbackOutput{Items: items, Total: total}, nil
}
