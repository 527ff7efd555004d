// Package validation holds the well-formedness checks for booking
// contact fields. The checks report booleans only; translating a
// failed check into a typed rejection is the reservation usecase's
// job.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// emailPattern accepts local@domain.tld with no embedded
	// whitespace, exactly one @ and a dot-separated label after it.
	// "a@.com" fails because the domain may not start with the dot.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern requires exactly 9 ASCII digits.
	phonePattern = regexp.MustCompile(`^[0-9]{9}$`)
)

// IsValidEmail reports whether s, after trimming, has a valid
// local-part@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsValidPhone reports whether s is exactly 9 ASCII digits after
// stripping whitespace. Only whitespace is stripped: hyphens and other
// punctuation make the number invalid.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(StripSpaces(s))
}

// StripSpaces removes every whitespace rune from s. It is also the
// normalization applied to the phone number before persisting it.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
