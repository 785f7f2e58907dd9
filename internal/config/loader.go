package config

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// LoadWithOverrides loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (nil overrides leave the environment in place)
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(l.config)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides. A nil field leaves the
// value from the environment or defaults in place.
type ConfigOverrides struct {
	Precision  *string
	HideZeros  *bool
	Once       *bool
	ExitAtZero *bool
	Verbose    *bool
}

// Apply copies every set override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.Precision != nil {
		config.Display.Precision = *o.Precision
	}
	if o.HideZeros != nil {
		config.Display.HideZeros = *o.HideZeros
	}
	if o.Once != nil {
		config.Countdown.Once = *o.Once
	}
	if o.ExitAtZero != nil {
		config.Countdown.ExitAtZero = *o.ExitAtZero
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}
