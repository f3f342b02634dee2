// Package commodity cleans the free-text commodity column of license exports.
package commodity

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// goldAliases are spellings collapsed to "Gold". Keys are upper case.
var goldAliases = map[string]struct{}{
	"GOLD":     {},
	"GOLD ORE": {},
	"GOLD.":    {},
}

// Normalize tidies a raw commodity value: line breaks and tabs become spaces,
// surrounding spaces and ".,;" are stripped, runs of whitespace collapse to one
// space, and plain gold spellings become "Gold". Other values keep their case.
func Normalize(raw string) string {
	clean := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(raw)
	clean = strings.Trim(clean, " .,;")
	clean = whitespace.ReplaceAllString(clean, " ")

	if _, ok := goldAliases[strings.ToUpper(clean)]; ok {
		return "Gold"
	}
	return clean
}
