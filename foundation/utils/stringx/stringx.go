// File: stringx.go
// Title: Core String Utility Functions
// Description: Emptiness predicates, defaults, Unicode-aware capitalization and
//              random identifiers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.English)

// IsEmpty returns true if s has length 0
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if s is empty or only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty is the inverse of IsEmpty
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank is the inverse of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsNotSet returns true if s is nil or points to an empty string.
// Whitespace counts as set.
func IsNotSet(s *string) bool {
	return s == nil || len(*s) == 0
}

// IsSet is the inverse of IsNotSet
func IsSet(s *string) bool {
	return !IsNotSet(s)
}

// FromBlankDefault returns defaultValue when s is blank
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// FirstNonBlank returns the first argument that is not blank, or ""
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// UpperFirst upper-cases the first rune of s and leaves the rest unchanged.
// Special casings apply, so "ßa" becomes "SSa".
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return upperCaser.String(s[:size]) + s[size:]
}

// UUID returns a random version 4 UUID in canonical form
func UUID() string {
	return uuid.NewString()
}
