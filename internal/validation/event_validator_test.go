package validation

import (
	"testing"
	"time"
)

const expectedFormat = "YYYY-MM-DD HH:MM:SS"

func TestEventValidator_GetValidDate(t *testing.T) {
	validator := NewEventValidator()

	tests := []struct {
		name         string
		input        string
		expected     time.Time
		expectError  bool
		expectedType ValidationErrorType
	}{
		{"Valid date", "2099-01-01 00:00:00", time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), false, ""},
		{"Surrounding whitespace", "  2099-01-01 00:00:00 ", time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), false, ""},
		{"Leap day", "2028-02-29 12:30:45", time.Date(2028, 2, 29, 12, 30, 45, 0, time.UTC), false, ""},
		{"Empty", "", time.Time{}, true, ErrorTypeRequired},
		{"Blank", "   ", time.Time{}, true, ErrorTypeRequired},
		{"Not a date", "not-a-date", time.Time{}, true, ErrorTypeInvalidFormat},
		{"Impossible date", "2099-02-30 00:00:00", time.Time{}, true, ErrorTypeInvalidValue},
		{"Invalid hour", "2099-01-01 24:00:00", time.Time{}, true, ErrorTypeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := validator.GetValidDate(tt.input, expectedFormat, time.UTC)

			if !tt.expectError {
				if err != nil {
					t.Fatalf("GetValidDate(%q) unexpected error: %v", tt.input, err)
				}
				if !date.Equal(tt.expected) {
					t.Errorf("GetValidDate(%q) = %v, want %v", tt.input, date, tt.expected)
				}
				return
			}

			if err == nil {
				t.Fatalf("GetValidDate(%q) expected error", tt.input)
			}
			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			fieldErrors := validationErr.GetFieldErrors("date")
			if len(fieldErrors) != 1 {
				t.Fatalf("expected one date error, got %d", len(fieldErrors))
			}
			if fieldErrors[0].Type != tt.expectedType {
				t.Errorf("error type = %v, want %v", fieldErrors[0].Type, tt.expectedType)
			}
		})
	}
}

func TestEventValidator_GetValidDateUsesLocation(t *testing.T) {
	location := time.FixedZone("UTC+9", 9*60*60)

	date, err := NewEventValidator().GetValidDate("2030-06-15 09:00:00", expectedFormat, location)
	if err != nil {
		t.Fatalf("GetValidDate() unexpected error: %v", err)
	}

	if date.Location() != location {
		t.Errorf("GetValidDate() location = %v, want %v", date.Location(), location)
	}
	want := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("GetValidDate() = %v, want the same instant as %v", date, want)
	}
}

func TestEventValidator_FormatMessageNamesLayout(t *testing.T) {
	_, err := NewEventValidator().GetValidDate("not-a-date", expectedFormat, time.UTC)

	validationErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	want := "date has invalid format, expected: YYYY-MM-DD HH:MM:SS"
	if got := validationErr.GetUserFriendlyMessage(); got != want {
		t.Errorf("GetUserFriendlyMessage() = %q, want %q", got, want)
	}
}
