package cram

import "errors"

// Sentinel errors for the cram package.
// Use errors.Is to check: errors.Is(err, cram.ErrNoSubjects)
var (
	ErrNoSubjects     = errors.New("cram: no subjects to schedule")
	ErrInvalidHours   = errors.New("cram: daily hours must be positive")
	ErrInvalidDays    = errors.New("cram: plan days must be positive")
	ErrInvalidWeights = errors.New("cram: weights out of bounds")
	ErrDayOutOfRange  = errors.New("cram: day index out of range")
)
