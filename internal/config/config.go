package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"countdown/internal/domain"
)

const (
	// DateFormat is the layout of the event argument, interpreted in the local timezone.
	DateFormat = "2006-01-02 15:04:05"
	// DisplayDateFormat is DateFormat as shown to users.
	DisplayDateFormat = "YYYY-MM-DD HH:MM:SS"
	// DefaultRefreshInterval is how long each frame stays on screen.
	DefaultRefreshInterval = 500 * time.Millisecond
	// EventLabel prefixes the one-shot output line.
	EventLabel = "Until event"
	// EnvPrefix prefixes every environment variable read by the loader.
	EnvPrefix = "COUNTDOWN"
)

// Config holds all configuration options for the countdown
type Config struct {
	Display     DisplayConfig
	Countdown   CountdownConfig
	Application ApplicationConfig
}

// DisplayConfig holds breakdown rendering configuration
type DisplayConfig struct {
	Precision string `env:"COUNTDOWN_PRECISION"`
	HideZeros bool   `env:"COUNTDOWN_HIDE_ZEROS"`
}

// CountdownConfig holds refresh loop configuration. RefreshInterval is
// fixed at DefaultRefreshInterval outside of tests.
type CountdownConfig struct {
	Once            bool `env:"COUNTDOWN_ONCE"`
	ExitAtZero      bool `env:"COUNTDOWN_EXIT_AT_ZERO"`
	RefreshInterval time.Duration
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"COUNTDOWN_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Precision: domain.DefaultPrecision.String(),
			HideZeros: false,
		},
		Countdown: CountdownConfig{
			Once:            false,
			ExitAtZero:      false,
			RefreshInterval: DefaultRefreshInterval,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// GetPrecision returns the configured precision, or the default if it does not parse
func (c *Config) GetPrecision() domain.Precision {
	p, err := domain.ParsePrecision(c.Display.Precision)
	if err != nil {
		return domain.DefaultPrecision
	}
	return p
}

// GetRefreshInterval returns the refresh interval of the countdown loop
func (c *Config) GetRefreshInterval() time.Duration {
	if c.Countdown.RefreshInterval <= 0 {
		return DefaultRefreshInterval
	}
	return c.Countdown.RefreshInterval
}

// envBindings maps configuration keys to their environment variables
var envBindings = map[string]string{
	"display.precision":      EnvPrefix + "_PRECISION",
	"display.hide_zeros":     EnvPrefix + "_HIDE_ZEROS",
	"countdown.once":         EnvPrefix + "_ONCE",
	"countdown.exit_at_zero": EnvPrefix + "_EXIT_AT_ZERO",
	"application.verbose":    EnvPrefix + "_VERBOSE",
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return &ConfigError{Field: key, Message: err.Error()}
		}
	}

	if v.IsSet("display.precision") {
		c.Display.Precision = strings.TrimSpace(v.GetString("display.precision"))
	}

	bools := []struct {
		key    string
		target *bool
	}{
		{"display.hide_zeros", &c.Display.HideZeros},
		{"countdown.once", &c.Countdown.Once},
		{"countdown.exit_at_zero", &c.Countdown.ExitAtZero},
		{"application.verbose", &c.Application.Verbose},
	}
	for _, b := range bools {
		if !v.IsSet(b.key) {
			continue
		}
		raw := v.GetString(b.key)
		parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return &ConfigError{Field: b.key, Message: envBindings[b.key] + " must be a boolean, got " + strconv.Quote(raw)}
		}
		*b.target = parsed
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if _, err := domain.ParsePrecision(c.Display.Precision); err != nil {
		return &ConfigError{
			Field:   "display.precision",
			Message: "precision must be one of " + strings.Join(domain.PrecisionNames(), ", "),
		}
	}
	if c.Countdown.RefreshInterval <= 0 {
		return &ConfigError{Field: "countdown.refresh_interval", Message: "refresh interval must be positive"}
	}
	if c.Countdown.Once && c.Countdown.ExitAtZero {
		return &ConfigError{Field: "countdown.exit_at_zero", Message: "exit at zero only applies to the continuous countdown"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
