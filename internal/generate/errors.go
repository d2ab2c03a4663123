package generate

import "errors"

// Sentinel errors for generation runs.
var (
	ErrPrediction = errors.New("prediction failed")
	ErrWindowSize = errors.New("seed window has wrong length")
)
