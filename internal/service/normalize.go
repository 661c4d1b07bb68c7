package service

import "strings"

// Field normalizers. Pure functions: handlers apply them to raw input
// before validation so rules and the store only ever see canonical form.

// NormalizeText trims surrounding whitespace from a free-text field.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
