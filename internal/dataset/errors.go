package dataset

import "errors"

// Sentinel errors for window extraction.
var (
	ErrInsufficientData = errors.New("insufficient data for window length")
	ErrInvalidWindow    = errors.New("window length must be at least 1")
)
