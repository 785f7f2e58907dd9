package services

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"countdown/internal/config"
	"countdown/internal/domain"
	"countdown/internal/errors"
	"countdown/internal/logging"
	"countdown/internal/validation"
)

// maxSpan is what time.Time.Sub saturates to when the real span overflows.
const maxSpan = time.Duration(math.MaxInt64)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	location       *time.Location
	eventValidator *validation.EventValidator
	logger         *log.Logger
}

// NewTimeService creates a new TimeService parsing dates in location
func NewTimeService(location *time.Location, logger *log.Logger) TimeService {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &timeServiceImpl{
		location:       location,
		eventValidator: validation.NewEventValidator(),
		logger:         logger,
	}
}

// ParseTarget converts the date argument into an Event
func (t *timeServiceImpl) ParseTarget(raw string) (*domain.Event, error) {
	target, err := t.eventValidator.GetValidDate(raw, config.DisplayDateFormat, t.location)
	if err != nil {
		if isMissingDate(err) {
			return nil, errors.NewValidationError("date is required", err)
		}
		return nil, errors.NewParseError(raw, config.DisplayDateFormat, err)
	}

	event := domain.NewEvent(target, strings.TrimSpace(raw))
	t.logger.Debug("parsed target",
		"target", target.Format(time.RFC3339),
		"relative", humanize.Time(target))

	return &event, nil
}

// isMissingDate reports whether err says the date argument was empty
func isMissingDate(err error) bool {
	validationErr, ok := err.(*validation.ValidationError)
	if !ok {
		return false
	}
	for _, fieldErr := range validationErr.GetFieldErrors("date") {
		if fieldErr.Type == validation.ErrorTypeRequired {
			return true
		}
	}
	return false
}

// Remaining returns the span from now until the event
func (t *timeServiceImpl) Remaining(event domain.Event, now time.Time) (time.Duration, error) {
	remaining := event.Until(now)
	if remaining == maxSpan {
		return 0, errors.NewRangeError("time until "+event.Raw, event.Raw)
	}
	return remaining, nil
}
