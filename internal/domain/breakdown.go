package domain

import (
	"strings"
	"time"
)

// Breakdown represents a non-negative span split into weeks, days, hours,
// minutes and seconds so that the sum of the parts equals the whole span
// (truncated to whole units of Precision).
//
// Days < 7, Hours < 24, Minutes < 60 and Seconds < 60; Weeks is unbounded.
// Units finer than Precision are always zero.
type Breakdown struct {
	Weeks     int64
	Days      int64
	Hours     int64
	Minutes   int64
	Seconds   int64
	Precision Precision
}

// NewBreakdown splits d into its component parts, largest unit first.
// Negative spans are clamped to zero and sub-second remainders are dropped.
// An invalid precision falls back to DefaultPrecision.
func NewBreakdown(d time.Duration, p Precision) Breakdown {
	if !p.IsValid() {
		p = DefaultPrecision
	}
	if d < 0 {
		d = 0
	}

	remaining := int64(d / time.Second)
	remaining -= remaining % p.Unit().Seconds()

	b := Breakdown{Precision: p}

	b.Weeks = remaining / secondsPerWeek
	remaining -= b.Weeks * secondsPerWeek

	b.Days = remaining / secondsPerDay
	remaining -= b.Days * secondsPerDay

	b.Hours = remaining / secondsPerHour
	remaining -= b.Hours * secondsPerHour

	b.Minutes = remaining / secondsPerMinute
	remaining -= b.Minutes * secondsPerMinute

	b.Seconds = remaining

	return b
}

// Value returns the count held in the bucket for u.
func (b Breakdown) Value(u Unit) int64 {
	switch u {
	case UnitWeek:
		return b.Weeks
	case UnitDay:
		return b.Days
	case UnitHour:
		return b.Hours
	case UnitMinute:
		return b.Minutes
	case UnitSecond:
		return b.Seconds
	default:
		return 0
	}
}

// TotalSeconds recomposes the span in seconds.
func (b Breakdown) TotalSeconds() int64 {
	return b.Weeks*secondsPerWeek +
		b.Days*secondsPerDay +
		b.Hours*secondsPerHour +
		b.Minutes*secondsPerMinute +
		b.Seconds
}

// IsZero reports whether every bucket is zero.
func (b Breakdown) IsZero() bool {
	return b.TotalSeconds() == 0
}

// String renders the breakdown in full mode.
func (b Breakdown) String() string {
	return b.Format(false)
}

// Format renders every retained unit, e.g.
// "0 weeks, 1 day, 1 hour, 1 minute, and 1 second". With hideZeros, units
// holding zero are left out ("1 day and 1 second"); if nothing is left the
// result is "0 <finest unit>", e.g. "0 seconds".
func (b Breakdown) Format(hideZeros bool) string {
	precision := b.Precision
	if !precision.IsValid() {
		precision = DefaultPrecision
	}

	parts := make([]string, 0, len(precision.Units()))
	for _, u := range precision.Units() {
		v := b.Value(u)
		if hideZeros && v == 0 {
			continue
		}
		parts = append(parts, u.Quantity(v))
	}

	if len(parts) == 0 {
		return precision.Unit().Quantity(0)
	}
	return joinParts(parts)
}

// joinParts joins phrases as an English list: "a", "a and b", "a, b, and c".
func joinParts(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}
