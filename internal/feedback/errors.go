package feedback

import "errors"

var (
	ErrMessageRequired = errors.New("message is required")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidCategory = errors.New("unknown feedback category")
)
