package domain

import (
	"strings"

	"countdown/internal/errors"
)

// Precision selects the finest unit a Breakdown keeps. Finer units are
// discarded, not rounded.
type Precision int

const (
	PrecisionWeeks Precision = iota
	PrecisionDays
	PrecisionHours
	PrecisionMinutes
	PrecisionSeconds
)

// DefaultPrecision keeps every unit down to seconds.
const DefaultPrecision = PrecisionSeconds

// Unit returns the finest unit retained at this precision.
func (p Precision) Unit() Unit {
	return Unit(p)
}

// Units returns the retained units, coarsest first.
func (p Precision) Units() []Unit {
	if !p.IsValid() {
		p = DefaultPrecision
	}
	return Units()[:int(p)+1]
}

// IsValid reports whether p is a known precision.
func (p Precision) IsValid() bool {
	return p >= PrecisionWeeks && p <= PrecisionSeconds
}

// String returns the plural name of the finest retained unit.
func (p Precision) String() string {
	if !p.IsValid() {
		return "unknown"
	}
	return p.Unit().String()
}

// PrecisionNames lists the accepted canonical precision names.
func PrecisionNames() []string {
	names := make([]string, 0, len(Units()))
	for _, u := range Units() {
		names = append(names, u.String())
	}
	return names
}

// ParsePrecision accepts the plural, singular or one-letter name of a unit.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weeks", "week", "w":
		return PrecisionWeeks, nil
	case "days", "day", "d":
		return PrecisionDays, nil
	case "hours", "hour", "h":
		return PrecisionHours, nil
	case "minutes", "minute", "m":
		return PrecisionMinutes, nil
	case "seconds", "second", "s":
		return PrecisionSeconds, nil
	default:
		return DefaultPrecision, errors.NewInvalidInputError("precision", s,
			"expected one of "+strings.Join(PrecisionNames(), ", "))
	}
}
