package domain

import (
	"time"
)

// Event is the moment being counted down to.
type Event struct {
	Target time.Time
	Raw    string
}

// NewEvent creates an Event for target, keeping the argument it was parsed from.
func NewEvent(target time.Time, raw string) Event {
	return Event{
		Target: target,
		Raw:    raw,
	}
}

// Until returns the span from now to the target. It is negative once the
// target has passed.
func (e Event) Until(now time.Time) time.Duration {
	return e.Target.Sub(now)
}

// HasPassed reports whether now is at or after the target.
func (e Event) HasPassed(now time.Time) bool {
	return !now.Before(e.Target)
}
