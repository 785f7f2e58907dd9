package domain

import "fmt"

// Unit is one bucket of a Breakdown, ordered from coarsest to finest.
type Unit int

const (
	UnitWeek Unit = iota
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

const (
	secondsPerMinute int64 = 60
	secondsPerHour         = 60 * secondsPerMinute
	secondsPerDay          = 24 * secondsPerHour
	secondsPerWeek         = 7 * secondsPerDay
)

var unitNames = [...]struct {
	singular string
	plural   string
	seconds  int64
}{
	UnitWeek:   {"week", "weeks", secondsPerWeek},
	UnitDay:    {"day", "days", secondsPerDay},
	UnitHour:   {"hour", "hours", secondsPerHour},
	UnitMinute: {"minute", "minutes", secondsPerMinute},
	UnitSecond: {"second", "seconds", 1},
}

// Units lists every unit from coarsest to finest.
func Units() []Unit {
	return []Unit{UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond}
}

// IsValid reports whether u is one of the known units.
func (u Unit) IsValid() bool {
	return u >= UnitWeek && u <= UnitSecond
}

// Seconds returns the number of seconds in one u.
func (u Unit) Seconds() int64 {
	if !u.IsValid() {
		return 0
	}
	return unitNames[u].seconds
}

// Name returns the unit name pluralized for n: singular only when n is exactly 1.
func (u Unit) Name(n int64) string {
	if !u.IsValid() {
		return "unknown"
	}
	if n == 1 {
		return unitNames[u].singular
	}
	return unitNames[u].plural
}

// Quantity renders n followed by the correctly pluralized unit name, e.g. "1 day" or "0 hours".
func (u Unit) Quantity(n int64) string {
	return fmt.Sprintf("%d %s", n, u.Name(n))
}

// String returns the plural unit name.
func (u Unit) String() string {
	return u.Name(0)
}
