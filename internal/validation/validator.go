package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"todo-cli/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTitleLength checks the trimmed title against the configured maximum, in characters
func (v *Validator) IsValidTitleLength(title string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(title)) <= v.getTitleMaxLength()
}

// HasControlCharacters reports whether s contains newlines, tabs or other control characters
func (v *Validator) HasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// IsValidPosition checks that a 1-based position addresses one of count items
func (v *Validator) IsValidPosition(position, count int) bool {
	return position >= 1 && position <= count
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TitleMaxLength returns the maximum title length in characters
func (v *Validator) TitleMaxLength() int {
	return v.getTitleMaxLength()
}

// getTitleMaxLength returns configured maximum title length or default
func (v *Validator) getTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255 // Default maximum
}
