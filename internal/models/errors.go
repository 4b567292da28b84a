package models

import "errors"

// Custom errors
var (
	ErrNoRatings         = errors.New("no ratings available for season")
	ErrNoGames           = errors.New("no games with lines for week")
	ErrInsufficientPicks = errors.New("not enough qualifying picks")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidID         = errors.New("invalid ID format")
)
