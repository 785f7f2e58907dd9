package validation

import (
	"regexp"
	"strings"
)

// Validator provides common validation utilities
type Validator struct {
	dateShapeRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		dateShapeRegex: regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasDateShape checks that s looks like YYYY-MM-DD HH:MM:SS without checking field ranges
func (v *Validator) HasDateShape(s string) bool {
	return v.dateShapeRegex.MatchString(s)
}
