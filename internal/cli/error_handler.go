package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"countdown/internal/errors"
	"countdown/internal/validation"
)

// ErrorHandler provides centralized error reporting for the command line
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	// Field-level validation errors list every failed field
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		userMessage := errors.GetUserMessage(err)
		return fmt.Errorf("%s", userMessage)
	}

	// Fallback for unknown errors
	return err
}

// Report prints err to w as "Error: <message>" and returns the exit code for it.
// Failures that are not the user's doing are also logged with their error code.
// A nil error prints nothing and returns errors.ExitOK.
func (eh *ErrorHandler) Report(w io.Writer, logger *log.Logger, err error) int {
	if err == nil {
		return errors.ExitOK
	}

	if errors.ShouldLogError(err) {
		logger.Error("countdown failed", "error_code", errors.GetErrorCode(err), "err", err)
	}

	fmt.Fprintf(w, "Error: %v\n", eh.HandleSimple(err))
	return errors.ExitCode(err)
}
