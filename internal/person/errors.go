package person

import "errors"

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrNameRequired   = errors.New("person name is required")
)
