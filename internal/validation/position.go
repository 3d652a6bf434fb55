package validation

import (
	"strconv"
	"strings"

	"todo-cli/internal/errors"
)

// ParsePosition converts user-supplied text into a 1-based position into a
// list of count items. Non-numeric text yields an invalid input error and a
// number outside [1, count] yields an out of range error; the text is never
// force-converted.
func ParsePosition(text string, count int) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, errors.NewInvalidInputError("position", text, "a number is required")
	}

	position, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.NewInvalidInputError("position", text, "must be a whole number")
	}

	if err := ValidatePosition(position, count); err != nil {
		return 0, err
	}
	return position, nil
}

// ValidatePosition checks that position lies within [1, count]
func ValidatePosition(position, count int) error {
	if !NewValidator().IsValidPosition(position, count) {
		return errors.NewOutOfRangeError(position, count)
	}
	return nil
}
