package service

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// RouteSeparator joins location names in a displayed route.
const RouteSeparator = " → "

// sanitizeString collapses whitespace and trims the result. Case is kept
// because location names are case sensitive.
func sanitizeString(value string) string {
	value = whitespaceRegex.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// joinRoute renders names as an arrow-joined route.
func joinRoute(names []string) string {
	return strings.Join(names, RouteSeparator)
}
