package services

import (
	"context"
	"time"
)

// SystemClock uses the standard library time functions
type SystemClock struct{}

// NewSystemClock creates a clock backed by the system time
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep waits for d or until ctx is done
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
