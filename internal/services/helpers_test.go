package services

import (
	"context"
	"testing"
	"time"

	"countdown/internal/display"
	"countdown/internal/domain"
	"countdown/internal/logging"
)

// fakeClock advances its time by exactly the requested amount on each Sleep.
type fakeClock struct {
	now         time.Time
	sleeps      []time.Duration
	cancelAfter int
	cancel      context.CancelFunc
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
	if f.cancelAfter > 0 && len(f.sleeps) >= f.cancelAfter && f.cancel != nil {
		f.cancel()
	}
	return ctx.Err()
}

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func setupTimeService(t *testing.T) TimeService {
	t.Helper()
	return NewTimeService(time.UTC, logging.Discard())
}

func setupCountdown(t *testing.T, clock Clock, opts CountdownOptions) (CountdownService, *display.BufferSink) {
	t.Helper()
	sink := display.NewBufferSink()
	return NewCountdownService(setupTimeService(t), clock, sink, opts, logging.Discard()), sink
}

func eventAt(target time.Time) domain.Event {
	return domain.NewEvent(target, target.Format("2006-01-02 15:04:05"))
}
