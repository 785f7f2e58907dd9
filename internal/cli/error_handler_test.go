package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	apperrors "countdown/internal/errors"
	"countdown/internal/logging"
	"countdown/internal/validation"
)

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	fieldErrors := validation.NewValidationError()
	fieldErrors.AddRequiredError("date")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Usage error",
			err:      apperrors.NewUsageError("missing date argument", "YYYY-MM-DD HH:MM:SS"),
			expected: "missing date argument, expected a date in the format: YYYY-MM-DD HH:MM:SS",
		},
		{
			name:     "Parse error",
			err:      apperrors.NewParseError("tomorrow", "YYYY-MM-DD HH:MM:SS", nil),
			expected: `error parsing date "tomorrow", expecting format: YYYY-MM-DD HH:MM:SS`,
		},
		{
			name:     "Field validation error",
			err:      fieldErrors,
			expected: "date is required",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_Report(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		output   string
		logged   string
		exitCode int
	}{
		{
			name:     "No error",
			err:      nil,
			output:   "",
			exitCode: apperrors.ExitOK,
		},
		{
			name:     "Usage error",
			err:      apperrors.NewUsageError("missing date argument", "YYYY-MM-DD HH:MM:SS"),
			output:   "Error: missing date argument, expected a date in the format: YYYY-MM-DD HH:MM:SS\n",
			exitCode: apperrors.ExitUsage,
		},
		{
			name:     "Parse error",
			err:      apperrors.NewParseError("x", "YYYY-MM-DD HH:MM:SS", nil),
			output:   "Error: error parsing date \"x\", expecting format: YYYY-MM-DD HH:MM:SS\n",
			exitCode: apperrors.ExitError,
		},
		{
			name:     "Configuration error",
			err:      apperrors.NewConfigurationError("countdown.exit_at_zero", errors.New("conflicts with once")),
			output:   "Error: invalid configuration: countdown.exit_at_zero (conflicts with once)\n",
			exitCode: apperrors.ExitError,
		},
		{
			name:     "Range error",
			err:      apperrors.NewRangeError("time until 9999-12-31 23:59:59", "9999-12-31 23:59:59"),
			output:   "Error: span too large to represent: time until 9999-12-31 23:59:59\n",
			logged:   "OUT_OF_RANGE",
			exitCode: apperrors.ExitError,
		},
		{
			name:     "Output error",
			err:      apperrors.NewOutputError("write frame", errors.New("broken pipe")),
			output:   "Error: Unable to write to the terminal.\n",
			logged:   "OUTPUT_FAILED",
			exitCode: apperrors.ExitError,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			output:   "Error: regular error\n",
			logged:   "UNKNOWN_ERROR",
			exitCode: apperrors.ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			code := eh.Report(&out, logging.New(&logs, false), tt.err)

			if code != tt.exitCode {
				t.Errorf("ErrorHandler.Report() code = %d, want %d", code, tt.exitCode)
			}
			if out.String() != tt.output {
				t.Errorf("ErrorHandler.Report() output = %q, want %q", out.String(), tt.output)
			}
			if tt.logged == "" {
				if logs.Len() != 0 {
					t.Errorf("ErrorHandler.Report() should not log user errors, got %q", logs.String())
				}
				return
			}
			if !strings.Contains(logs.String(), "error_code") || !strings.Contains(logs.String(), tt.logged) {
				t.Errorf("ErrorHandler.Report() log = %q, want error_code %s", logs.String(), tt.logged)
			}
		})
	}
}
