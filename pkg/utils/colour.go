package utils

import (
	"regexp"
	"strings"
)

var hexColourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColour reports whether s is a #RRGGBB colour. Shorthand (#RGB) and
// 8-digit (#RRGGBBAA) forms are rejected.
func IsHexColour(s string) bool {
	return hexColourPattern.MatchString(s)
}

// NormalizeColour converts assorted colour spellings to canonical #rrggbb
// form: the # prefix is optional on input and 3-char shorthand is expanded.
// Returns "" for anything else.
func NormalizeColour(input string) string {
	if input == "" {
		return ""
	}

	input = strings.TrimPrefix(input, "#")
	input = strings.ToLower(input)

	if len(input) == 3 {
		input = string([]byte{
			input[0], input[0],
			input[1], input[1],
			input[2], input[2],
		})
	}
	if len(input) != 6 {
		return ""
	}
	for i := 0; i < 6; i++ {
		c := input[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return ""
		}
	}
	return "#" + input
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsInt checks if an int slice contains a specific int
func ContainsInt(slice []int, item int) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
