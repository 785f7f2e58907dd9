package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"countdown/internal/config"
	"countdown/internal/errors"
)

// RootCommand is the countdown command itself; it takes no subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with its flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   `countdown [flags] "YYYY-MM-DD HH:MM:SS"`,
		Short: "Count down to a date and time",
		Long: `countdown shows how long is left until a date and time, redrawing a
single terminal line every half second until interrupted.

The remaining time is split into weeks, days, hours, minutes and seconds.
When standard output is not a terminal the countdown is printed once.

EXAMPLES:
  countdown "2030-01-01 00:00:00"              # Count down to new year 2030
  countdown -z "2030-01-01 00:00:00"           # Leave out units that are zero
  countdown -p hours "2030-01-01 00:00:00"     # Stop at hours
  countdown --once "2030-01-01 00:00:00"       # Print the remaining time and exit
  countdown --exit-at-zero "2030-01-01 00:00:00"

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    COUNTDOWN_PRECISION                    Finest unit shown (default: seconds)
    COUNTDOWN_HIDE_ZEROS                   Leave out zero units (default: false)
    COUNTDOWN_ONCE                         Print once and exit (default: false)
    COUNTDOWN_EXIT_AT_ZERO                 Exit when the event is reached (default: false)
    COUNTDOWN_VERBOSE                      Enable verbose output (default: false)
    COUNTDOWN_DEBUG                        Enable debug logging when set`,
		Args:          root.validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Resolve defaults, environment and flags before the countdown starts
			return root.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCountdownCommand(root.app).Execute(cmd.Context(), args)
		},
	}

	root.cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapError(err, errors.ErrorTypeUsage, err.Error())
	})

	root.addFlags()

	return root
}

// ExecuteContext runs the root command with ctx available to the countdown
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addFlags adds the configuration override flags
func (r *RootCommand) addFlags() {
	flags := r.cmd.Flags()

	flags.StringP("precision", "p", "", "Finest unit shown: weeks, days, hours, minutes or seconds (overrides COUNTDOWN_PRECISION)")
	flags.BoolP("hide-zeros", "z", false, "Leave out units that are zero (overrides COUNTDOWN_HIDE_ZEROS)")
	flags.BoolP("once", "1", false, "Print the remaining time once and exit (overrides COUNTDOWN_ONCE)")
	flags.Bool("exit-at-zero", false, "Exit when the event is reached (overrides COUNTDOWN_EXIT_AT_ZERO)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides COUNTDOWN_VERBOSE)")
}

// validateArgs requires exactly one date argument
func (r *RootCommand) validateArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.NewUsageError("missing date argument", config.DisplayDateFormat)
	case len(args) > 1:
		return errors.NewUsageError(
			fmt.Sprintf("expected a single argument, got %d (quote the date and time)", len(args)),
			config.DisplayDateFormat,
		)
	}
	return nil
}

// loadConfig resolves the configuration with flags taking priority over the environment
func (r *RootCommand) loadConfig() error {
	cfg, err := r.app.loader.LoadWithOverrides(overridesFromFlags(r.cmd.Flags()))
	if err != nil {
		var cfgErr *config.ConfigError
		if stderrors.As(err, &cfgErr) {
			return errors.NewConfigurationError(cfgErr.Field, cfgErr)
		}
		return errors.NewConfigurationError("environment", err)
	}
	r.app.config = cfg
	return nil
}

// overridesFromFlags collects the flags given on the command line. Flags left
// at their defaults do not override the environment.
func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("precision") {
		precision, _ := flags.GetString("precision")
		overrides.Precision = &precision
	}
	if flags.Changed("hide-zeros") {
		hideZeros, _ := flags.GetBool("hide-zeros")
		overrides.HideZeros = &hideZeros
	}
	if flags.Changed("once") {
		once, _ := flags.GetBool("once")
		overrides.Once = &once
	}
	if flags.Changed("exit-at-zero") {
		exitAtZero, _ := flags.GetBool("exit-at-zero")
		overrides.ExitAtZero = &exitAtZero
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}
