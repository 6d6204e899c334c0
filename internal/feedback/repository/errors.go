package repository

import "errors"

var (
	ErrFailedToInsertFeedback = errors.New("failed to insert feedback")
	ErrFailedToListFeedback   = errors.New("failed to list feedback")
)
