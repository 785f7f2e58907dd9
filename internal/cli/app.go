package cli

import (
	"context"
	"io"
	"time"

	"countdown/internal/config"
	"countdown/internal/display"
	"countdown/internal/services"
)

// App represents the main CLI application
type App struct {
	loader      *config.Loader
	config      *config.Config
	stdout      io.Writer
	stderr      io.Writer
	clock       services.Clock
	location    *time.Location
	interactive bool
}

// NewApp creates a new CLI application writing the countdown to stdout and
// logs and errors to stderr
func NewApp(loader *config.Loader, stdout, stderr io.Writer) *App {
	return &App{
		loader:      loader,
		config:      config.NewConfig(),
		stdout:      stdout,
		stderr:      stderr,
		clock:       services.NewSystemClock(),
		location:    time.Local,
		interactive: display.IsTerminal(stdout),
	}
}

// WithClock replaces the system clock
func (a *App) WithClock(clock services.Clock) *App {
	a.clock = clock
	return a
}

// WithLocation sets the timezone the target date is read in
func (a *App) WithLocation(location *time.Location) *App {
	a.location = location
	return a
}

// WithInteractive overrides terminal detection on stdout
func (a *App) WithInteractive(interactive bool) *App {
	a.interactive = interactive
	return a
}

// Config returns the configuration the last run resolved
func (a *App) Config() *config.Config {
	return a.config
}

// Run executes the root command with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}

	root := NewRootCommand(a)
	root.cmd.SetArgs(args)
	root.cmd.SetOut(a.stdout)
	root.cmd.SetErr(a.stderr)
	return root.ExecuteContext(ctx)
}
