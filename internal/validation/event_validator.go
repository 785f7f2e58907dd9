package validation

import (
	"strings"
	"time"

	"countdown/internal/config"
)

// EventValidator validates the date argument naming the event
type EventValidator struct {
	validator *Validator
}

// NewEventValidator creates a new event validator
func NewEventValidator() *EventValidator {
	return &EventValidator{
		validator: NewValidator(),
	}
}

// GetValidDate checks that raw is present and matches the fixed date layout,
// and returns it as a time in location
func (ev *EventValidator) GetValidDate(raw string, expectedFormat string, location *time.Location) (time.Time, error) {
	validationError := NewValidationError()
	trimmed := strings.TrimSpace(raw)

	if !ev.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("date")
		return time.Time{}, validationError
	}
	if !ev.validator.HasDateShape(trimmed) {
		validationError.AddInvalidFormatError("date", raw, expectedFormat)
		return time.Time{}, validationError
	}

	date, err := time.ParseInLocation(config.DateFormat, trimmed, location)
	if err != nil {
		validationError.AddInvalidValueError("date", raw, "not a real calendar date or time")
		return time.Time{}, validationError
	}
	return date, nil
}
