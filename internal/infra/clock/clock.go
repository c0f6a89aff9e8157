// Package clock provides the production wall clock.
package clock

import (
	"time"

	"istiqdam/internal/domain/service"
)

// systemClock implements service.Clock with time.Now.
type systemClock struct{}

// NewSystemClock is the constructor for systemClock.
func NewSystemClock() service.Clock {
	return &systemClock{}
}

// Now returns the current wall-clock time.
func (c *systemClock) Now() time.Time {
	return time.Now()
}
