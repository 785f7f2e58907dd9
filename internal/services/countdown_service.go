package services

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"countdown/internal/config"
	"countdown/internal/display"
	"countdown/internal/domain"
	"countdown/internal/errors"
	"countdown/internal/logging"
)

// countdownServiceImpl implements the CountdownService interface
type countdownServiceImpl struct {
	timeService TimeService
	clock       Clock
	sink        display.Sink
	opts        CountdownOptions
	logger      *log.Logger
}

// NewCountdownService creates a new CountdownService drawing to sink
func NewCountdownService(timeService TimeService, clock Clock, sink display.Sink, opts CountdownOptions, logger *log.Logger) CountdownService {
	if !opts.Precision.IsValid() {
		opts.Precision = domain.DefaultPrecision
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = config.DefaultRefreshInterval
	}
	if opts.Label == "" {
		opts.Label = config.EventLabel
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &countdownServiceImpl{
		timeService: timeService,
		clock:       clock,
		sink:        sink,
		opts:        opts,
		logger:      logger,
	}
}

// Render formats the time left until event as seen at now
func (c *countdownServiceImpl) Render(event domain.Event, now time.Time) (string, error) {
	remaining, err := c.timeService.Remaining(event, now)
	if err != nil {
		return "", err
	}
	return domain.NewBreakdown(remaining, c.opts.Precision).Format(c.opts.HideZeros), nil
}

// Once writes a single line and returns
func (c *countdownServiceImpl) Once(ctx context.Context, event domain.Event) error {
	now := c.clock.Now()
	if event.HasPassed(now) {
		c.logger.Warn("event has already passed", "target", event.Raw)
	}

	text, err := c.Render(event, now)
	if err != nil {
		return err
	}

	if err := c.sink.Write(fmt.Sprintf("%s: %s\n", c.opts.Label, text)); err != nil {
		return errors.NewOutputError("write countdown", err)
	}
	return nil
}

// Run draws a frame, sleeps, clears the line and repeats. It returns nil
// when ctx is cancelled, or when the event is reached if ExitAtZero is set.
func (c *countdownServiceImpl) Run(ctx context.Context, event domain.Event) error {
	c.logger.Debug("starting countdown",
		"target", event.Raw,
		"precision", c.opts.Precision,
		"hide_zeros", c.opts.HideZeros,
		"interval", c.opts.RefreshInterval)

	// Nothing is logged once frames are on screen
	if event.HasPassed(c.clock.Now()) && !c.opts.ExitAtZero {
		c.logger.Warn("event has already passed", "target", event.Raw)
	}

	frames := 0
	for {
		now := c.clock.Now()
		passed := event.HasPassed(now)

		text, err := c.Render(event, now)
		if err != nil {
			return err
		}
		if err := c.sink.Write(text); err != nil {
			return errors.NewOutputError("write frame", err)
		}
		frames++

		if passed && c.opts.ExitAtZero {
			c.logger.Debug("event reached", "frames", frames)
			return c.finish()
		}

		if err := c.clock.Sleep(ctx, c.opts.RefreshInterval); err != nil {
			c.logger.Debug("countdown interrupted", "frames", frames, "reason", err)
			return c.finish()
		}

		if err := c.sink.ClearLine(); err != nil {
			return errors.NewOutputError("clear line", err)
		}
	}
}

// finish leaves the last frame on screen and moves to a new line
func (c *countdownServiceImpl) finish() error {
	if err := c.sink.Write("\n"); err != nil {
		return errors.NewOutputError("finish countdown", err)
	}
	return nil
}
