package utils

import (
	"fmt"
	"regexp"
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	fieldNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	controlChars   = regexp.MustCompile(`[\x00-\x1f\x7f]`)
)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// ValidateFieldName validates a form field name key. Names are lowercase
// snake_case; anything else risks shadowing another field's value in the
// form_data document.
func ValidateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name is required")
	}
	if !fieldNameRegex.MatchString(name) {
		return fmt.Errorf("invalid field name: %s", name)
	}
	return nil
}

// ValidateAmount validates a claim amount
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative: %.2f", amount)
	}
	return nil
}

// ValidatePercent validates a tax or depreciation percentage
func ValidatePercent(pct float64) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("percentage out of range: %.2f", pct)
	}
	return nil
}

// SanitizeString strips control characters from user input
func SanitizeString(s string) string {
	return controlChars.ReplaceAllString(s, "")
}
