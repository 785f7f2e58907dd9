package cli

import (
	"context"

	"countdown/internal/config"
	"countdown/internal/display"
	"countdown/internal/errors"
	"countdown/internal/logging"
	"countdown/internal/services"
)

// CountdownCommand handles counting down to the date given on the command line
type CountdownCommand struct {
	app *App
}

// NewCountdownCommand creates a new countdown command handler
func NewCountdownCommand(app *App) *CountdownCommand {
	return &CountdownCommand{app: app}
}

// Execute parses the date argument and runs the countdown
func (c *CountdownCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewUsageError("missing date argument", config.DisplayDateFormat)
	}

	cfg := c.app.config
	logger := logging.New(c.app.stderr, cfg.Application.Verbose)

	timeService := services.NewTimeService(c.app.location, logger)
	event, err := timeService.ParseTarget(args[0])
	if err != nil {
		return err
	}

	sink := display.NewTerminalSink(c.app.stdout)
	countdown := services.NewCountdownService(timeService, c.app.clock, sink, services.CountdownOptions{
		Precision:       cfg.GetPrecision(),
		HideZeros:       cfg.Display.HideZeros,
		ExitAtZero:      cfg.Countdown.ExitAtZero,
		RefreshInterval: cfg.GetRefreshInterval(),
		Label:           config.EventLabel,
	}, logger)

	if cfg.Countdown.Once || !c.app.interactive {
		if cfg.Countdown.ExitAtZero {
			logger.Warn("stdout is not a terminal, printing once and ignoring exit at zero")
		}
		logger.Debug("printing once", "requested", cfg.Countdown.Once, "interactive", c.app.interactive)
		return countdown.Once(ctx, *event)
	}

	logger.Debug("redrawing in place", "exit_at_zero", cfg.Countdown.ExitAtZero)
	return countdown.Run(ctx, *event)
}
