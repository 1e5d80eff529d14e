package review

import "errors"

var (
	ErrNotFound        = errors.New("review not found")
	ErrReplyNotFound   = errors.New("reply not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidLabel    = errors.New("invalid rating label")
)
