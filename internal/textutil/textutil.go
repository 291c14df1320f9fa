// Package textutil holds small text helpers shared by the extraction
// functions and the CLI.
package textutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// IsNumeric reports whether s parses as a finite number. Integer, decimal
// and exponent notation all count; empty strings, NaN and infinities do
// not.
func IsNumeric(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims
// the ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
