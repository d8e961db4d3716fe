// Package validate holds the input validation and sanitization rules applied
// to untrusted request fields before they reach storage. The denylist checks
// are a second line of defense for content that is later rendered unescaped;
// parameterized queries remain the real injection protection.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxEmailLength = 254
	maxURLLength   = 2048
)

var (
	scriptAnyPattern    = regexp.MustCompile(`(?i)<\s*/?\s*script\b`)
	scriptOpenPattern   = regexp.MustCompile(`(?i)<\s*script\b[^>]*>`)
	scriptClosePattern  = regexp.MustCompile(`(?i)<\s*/\s*script\s*>`)
	javascriptPattern   = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	sqlKeywordPattern   = regexp.MustCompile(`(?i)\b(drop\s+table|delete\s+from|insert\s+into|update\s+\w+\s+set)\b`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s/$.?#][^\s]*$`)
	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// TextRules bundles the per-field constraints applied by Text.
type TextRules struct {
	Required       bool
	MinLength      int
	MaxLength      int
	Pattern        *regexp.Regexp
	PatternMessage string
}

// Text validates a free-text field. An empty value passes unless the field
// is required; non-empty values are trimmed before length and pattern
// checks. The returned error message is user-facing.
func Text(value, fieldName string, rules TextRules) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if rules.Required {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}

	if rules.MinLength > 0 && len(trimmed) < rules.MinLength {
		return fmt.Errorf("%s must be at least %d characters", fieldName, rules.MinLength)
	}
	if rules.MaxLength > 0 && len(trimmed) > rules.MaxLength {
		return fmt.Errorf("%s must be no more than %d characters", fieldName, rules.MaxLength)
	}
	if rules.Pattern != nil && !rules.Pattern.MatchString(trimmed) {
		message := rules.PatternMessage
		if message == "" {
			message = fmt.Sprintf("%s has an invalid format", fieldName)
		}
		return fmt.Errorf("%s", message)
	}

	if containsDangerousInput(trimmed) {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// Email validates an optional email field: empty passes, non-empty values
// must fit the local@domain.tld shape within the length cap.
func Email(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if len(trimmed) > maxEmailLength {
		return fmt.Errorf("Email is too long")
	}
	if !emailPattern.MatchString(trimmed) {
		return fmt.Errorf("Invalid email format")
	}
	return nil
}

// URL validates an optional URL field: empty passes, non-empty values must
// be http(s) with a host, within the length cap.
func URL(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if len(trimmed) > maxURLLength {
		return fmt.Errorf("URL is too long")
	}
	if !urlPattern.MatchString(trimmed) {
		return fmt.Errorf("Invalid URL format")
	}
	return nil
}

// UUID validates a required identifier against the canonical 8-4-4-4-12
// hexadecimal form, case-insensitively. Missing and malformed values fail
// with distinct messages.
func UUID(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("ID is required")
	}
	if !uuidPattern.MatchString(trimmed) {
		return fmt.Errorf("Invalid ID format")
	}
	return nil
}

// SanitizeText trims the value and strips script tags, javascript: URIs and
// inline event-handler attributes. Stripping repeats until the value stops
// changing, so nested fragments cannot reassemble a dangerous pattern and
// the function is idempotent.
func SanitizeText(value string) string {
	current := strings.TrimSpace(value)
	for {
		next := scriptOpenPattern.ReplaceAllString(current, "")
		next = scriptClosePattern.ReplaceAllString(next, "")
		next = javascriptPattern.ReplaceAllString(next, "")
		next = eventHandlerPattern.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == current {
			return current
		}
		current = next
	}
}

func containsDangerousInput(value string) bool {
	if scriptAnyPattern.MatchString(value) {
		return true
	}
	if javascriptPattern.MatchString(value) {
		return true
	}
	if eventHandlerPattern.MatchString(value) {
		return true
	}
	return sqlKeywordPattern.MatchString(value)
}
