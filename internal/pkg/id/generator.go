// Package id generates and validates entity identifiers and URL slugs.
package id

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID v4
func NewUUID() string {
	return uuid.New().String()
}

// ValidateUUID validates a UUID format
func ValidateUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Slugify converts a title into a URL-safe slug. Hangul and other letters
// are kept as-is since the platform serves Korean content; only spacing
// and punctuation are normalized.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ValidSlug reports whether s is a non-empty URL-safe slug.
func ValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
