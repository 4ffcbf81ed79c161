package numerology

import (
	"fmt"
	"strings"
)

// ParseGender matches s against the recognised genders ignoring case.
// Surrounding whitespace is not trimmed; " male" is rejected.
func ParseGender(s string) (Gender, error) {
	if g, ok := matchGender(s); ok {
		return g, nil
	}
	return "", fmt.Errorf("%w: %q, use %q or %q", ErrInvalidGender, s, Male, Female)
}

// matchGender is the lookup behind ParseGender.
func matchGender(value string) (Gender, bool) {
	for _, g := range Genders() {
		if strings.EqualFold(value, string(g)) {
			return g, true
		}
	}
	return "", false
}

// Valid reports whether g is one of the recognised genders.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}
