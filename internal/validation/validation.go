// Package validation holds the field validators used by the site forms.
package validation

import (
	"regexp"
	"strings"

	"github.com/ecobytes/site-api/internal/document"
	"golang.org/x/text/cases"
)

// MaxEmailLength is the longest address accepted by ValidateEmail.
const MaxEmailLength = 254

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Messages returns the error messages in the order they were added.
func (vr *ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// ValidateEmail reports whether email has the form local@domain.tld and fits
// in MaxEmailLength bytes.
func ValidateEmail(email string) bool {
	return len(email) <= MaxEmailLength && emailRegex.MatchString(email)
}

// NormalizeEmail trims the address and case folds it for duplicate detection.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// ValidatePhone accepts Brazilian numbers with area code: 10 digits for
// landlines, 11 for mobiles.
func ValidatePhone(phone string) bool {
	n := len(document.Digits(phone))
	return n == 10 || n == 11
}

// ValidateCEP accepts a postal code with 8 digits, with or without the dash.
func ValidateCEP(cep string) bool {
	return len(document.Digits(cep)) == 8
}

// SanitizeString removes leading/trailing whitespace
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}
