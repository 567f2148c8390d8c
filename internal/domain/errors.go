package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and delivery.
var (
	// ErrInvalidInput rejects a whole request before any processing happens.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingColumn is returned when a sheet lacks a required header.
	ErrMissingColumn = fmt.Errorf("%w: missing required column", ErrInvalidInput)
	// ErrOutsideScheduleWindow is returned for a send time too far in the future to schedule.
	ErrOutsideScheduleWindow = errors.New("send time outside scheduling window")
)
