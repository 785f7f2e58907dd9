package config

import (
	"testing"
)

func TestLoader_LoadWithoutOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COUNTDOWN_PRECISION", "hours")

	cfg, err := NewLoader().LoadWithOverrides(nil)
	if err != nil {
		t.Fatalf("LoadWithOverrides(nil) error = %v", err)
	}
	if cfg.Display.Precision != "hours" {
		t.Errorf("precision = %q, want %q", cfg.Display.Precision, "hours")
	}
}

func TestLoader_LoadWithoutOverrides_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("COUNTDOWN_PRECISION", "fortnights")

	if _, err := NewLoader().LoadWithOverrides(nil); err == nil {
		t.Fatal("LoadWithOverrides(nil) should reject an unknown precision")
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COUNTDOWN_PRECISION", "fortnights")
	t.Setenv("COUNTDOWN_HIDE_ZEROS", "false")

	precision := "days"
	hideZeros := true
	once := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Precision: &precision,
		HideZeros: &hideZeros,
		Once:      &once,
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}

	if cfg.Display.Precision != "days" {
		t.Errorf("flag should override environment precision, got %q", cfg.Display.Precision)
	}
	if !cfg.Display.HideZeros {
		t.Error("flag should override environment hide zeros")
	}
	if !cfg.Countdown.Once {
		t.Error("flag should set once")
	}
	if cfg.Application.Verbose {
		t.Error("unset override should keep default verbose")
	}
}

func TestLoader_LoadWithOverrides_Nil(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().LoadWithOverrides(nil)
	if err != nil {
		t.Fatalf("LoadWithOverrides(nil) error = %v", err)
	}
	if cfg.Display.Precision != "seconds" {
		t.Errorf("precision = %q, want default", cfg.Display.Precision)
	}
}

func TestLoader_LoadWithOverrides_Invalid(t *testing.T) {
	clearEnv(t)
	once := true
	exitAtZero := true

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{Once: &once, ExitAtZero: &exitAtZero})
	if err == nil {
		t.Fatal("expected once with exit at zero to be rejected")
	}
}
