package interaction

import "errors"

var (
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrPersonNotFound      = errors.New("person not found")
	ErrInvalidType         = errors.New("invalid interaction type")
	ErrNoSuggestion        = errors.New("no follow-up suggestion produced")
)
