// Package naming canonicalizes free-form group and indicator names into the
// lowercase, underscore-separated identifiers used in the generated table.
package naming

import (
	"regexp"
	"strings"
)

// GroupPathPrefix is the object path namespace every LED group lives under.
const GroupPathPrefix = "/xyz/openbmc_project/led/groups/"

var (
	// "HTTPServer" -> "HTTP_Server"
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	// "powerOn" -> "power_On", "fan0Fault" -> "fan0_Fault"
	wordBoundary = regexp.MustCompile(`([a-z\d])([A-Z])`)
	separators   = regexp.MustCompile(`[-\s]`)
)

// Underscore converts name to its canonical identifier form. Word boundaries
// implied by casing become underscores, dashes and whitespace become
// underscores, and the result is lowercased. Names that differ only in those
// respects map to the same identifier.
func Underscore(name string) string {
	s := strings.TrimSpace(name)
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	s = separators.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// GroupPath returns the namespaced object path for a group name. The name is
// normalized first.
func GroupPath(name string) string {
	return GroupPathPrefix + Underscore(name)
}
