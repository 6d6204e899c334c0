package analytics

import "errors"

var (
	ErrNameRequired = errors.New("event name is required")
)
