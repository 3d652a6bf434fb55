package cli

import (
	"strings"

	"todo-cli/internal/errors"
	"todo-cli/internal/logging"
	"todo-cli/internal/validation"
)

// ErrorHandler turns errors from the manager into single-line messages
type ErrorHandler struct {
	logger *logging.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logging.Logger) *ErrorHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ErrorHandler{logger: logger}
}

// Message returns the user-facing text for err. System errors are also
// written to the debug log with their cause.
func (eh *ErrorHandler) Message(err error) string {
	if err == nil {
		return ""
	}

	if errors.ShouldLogError(err) {
		eh.logDetail(err)
	}

	var message string
	if validationErr, ok := err.(*validation.ValidationError); ok {
		message = validationErr.GetUserFriendlyMessage()
	} else {
		message = errors.GetUserMessage(err)
	}
	return singleLine(message)
}

// IsUserError reports whether err was caused by what the user typed
func (eh *ErrorHandler) IsUserError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Type.IsUserError()
	}
	return false
}

func (eh *ErrorHandler) logDetail(err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		eh.logger.Debugf("%s: %v", errors.GetErrorCode(err), err)
		return
	}
	if operation, ok := appErr.GetContext("operation"); ok {
		eh.logger.Debugf("%s during %v: %v", appErr.Code, operation, err)
		return
	}
	eh.logger.Debugf("%s: %v", appErr.Code, err)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
