package beta

import "errors"

var (
	ErrEntryNotFound  = errors.New("whitelist entry not found")
	ErrDuplicateEmail = errors.New("email already whitelisted")
	ErrInvalidEmail   = errors.New("invalid email")
)
