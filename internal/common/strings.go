package common

import "strings"

// UnknownStr is the String() value of unrecognized enum members.
const UnknownStr = "unknown"

// IsBlank returns true if s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
