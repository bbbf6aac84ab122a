// Package slug derives the human-readable identifiers that key device types
// in the slug-family document schema.
package slug

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/braunma/rackarr/internal/constants"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsValid reports whether s satisfies the slug grammar:
// lowercase [a-z0-9]+(-[a-z0-9]+)*, 1-100 chars.
func IsValid(s string) bool {
	if len(s) == 0 || len(s) > constants.MaxSlugLength {
		return false
	}
	return slugPattern.MatchString(s)
}

// Slugify converts a display string to a slug. "+" becomes "plus" (so
// "DS920+" yields "ds920-plus"); any other non-alphanumeric run becomes a
// single hyphen. Returns "" when nothing slugifiable remains.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "+", "-plus-")

	var b strings.Builder
	for _, char := range s {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') {
			b.WriteRune(char)
		} else {
			b.WriteByte('-')
		}
	}

	result := b.String()
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	return strings.Trim(result, "-")
}

// ForDevice derives a device type's slug. Manufacturer+model take precedence
// over the display name when both are present; an empty derivation falls
// back to a generic placeholder. The result is capped at the grammar's
// length limit, trimming any hyphen the cut leaves dangling.
func ForDevice(manufacturer, model, name string) string {
	var s string
	if manufacturer != "" && model != "" {
		s = Slugify(manufacturer + " " + model)
	} else {
		s = Slugify(name)
	}
	if len(s) > constants.MaxSlugLength {
		s = strings.TrimRight(s[:constants.MaxSlugLength], "-")
	}
	if s == "" {
		return constants.FallbackSlug
	}
	return s
}

// Uniquer assigns numeric suffixes (-2, -3, ...) so repeated base slugs stay
// unique within one document. Assignment order is fixed at conversion time.
type Uniquer struct {
	used map[string]bool
}

// NewUniquer returns an empty Uniquer
func NewUniquer() *Uniquer {
	return &Uniquer{used: make(map[string]bool)}
}

// Claim marks an existing slug as used without deriving a new one
func (u *Uniquer) Claim(s string) {
	u.used[s] = true
}

// Unique returns base, or the first base-N (N >= 2) not yet claimed, and
// marks the result as used.
func (u *Uniquer) Unique(base string) string {
	candidate := base
	for n := 2; u.used[candidate]; n++ {
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	u.used[candidate] = true
	return candidate
}
