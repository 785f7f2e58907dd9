package services

import (
	"context"
	"time"

	"countdown/internal/domain"
)

// Clock supplies the current time and blocks between refresh ticks
type Clock interface {
	Now() time.Time
	// Sleep blocks for d, returning ctx.Err() early if ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// TimeService handles parsing the event and measuring the span until it
type TimeService interface {
	// ParseTarget parses a YYYY-MM-DD HH:MM:SS argument in the service's location.
	ParseTarget(raw string) (*domain.Event, error)
	// Remaining returns target minus now, failing when the span cannot be represented.
	Remaining(event domain.Event, now time.Time) (time.Duration, error)
}

// CountdownService renders and displays the time left until an event
type CountdownService interface {
	// Render returns the formatted breakdown of the span from now to the event.
	Render(event domain.Event, now time.Time) (string, error)
	// Once writes a single "Until event: ..." line.
	Once(ctx context.Context, event domain.Event) error
	// Run redraws the countdown every refresh interval until ctx is done.
	Run(ctx context.Context, event domain.Event) error
}

// CountdownOptions controls how the countdown is rendered and refreshed
type CountdownOptions struct {
	Precision       domain.Precision
	HideZeros       bool
	ExitAtZero      bool
	RefreshInterval time.Duration
	Label           string
}
