// Package alias normalizes the unit and currency phrases users type
// and resolves them against the static tables. The index is built once
// at startup; on alias collision the first-registered mapping wins, so
// lookup behavior is stable regardless of future table growth.
package alias

import (
	"regexp"
	"strings"
)

var (
	reDegreeWord  = regexp.MustCompile(`\bdegrees?\b`)
	reSquareWord  = regexp.MustCompile(`\bsquare\b`)
	reCubicWord   = regexp.MustCompile(`\bcubic\b`)
	rePerWord     = regexp.MustCompile(`\bper\b`)
	reSlashRuns   = regexp.MustCompile(`\s*/+\s*`)
	reSpaceRuns   = regexp.MustCompile(`\s+`)
	reTrailingExp = regexp.MustCompile(`([a-z])\s+([23])\b`)
)

var unitReplacer = strings.NewReplacer(
	"µ", "u", // micro sign
	"μ", "u", // greek mu
	"²", "2",
	"³", "3",
	"^2", "2",
	"^3", "3",
	"°", "",
	"(", " ",
	")", " ",
	",", " ",
	"-", " ",
)

// Normalize canonicalizes a unit phrase: lowercase, micro signs to
// "u", exponents to plain digits, degree words stripped, square/cubic
// shortened, "per" as a slash, separators collapsed, and a trailing
// 2/3 joined onto its preceding token ("m 2" becomes "m2").
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = unitReplacer.Replace(s)
	s = reDegreeWord.ReplaceAllString(s, " ")
	s = reSquareWord.ReplaceAllString(s, "sq")
	s = reCubicWord.ReplaceAllString(s, "cu")
	s = rePerWord.ReplaceAllString(s, "/")
	s = reSlashRuns.ReplaceAllString(s, "/")
	s = reSpaceRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = reTrailingExp.ReplaceAllString(s, "$1$2")
	return s
}

var monetaryReplacer = strings.NewReplacer(
	".", "",
	",", "",
	"-", "",
)

// NormalizeMonetary is the lighter variant used for currency phrases,
// which rarely carry exponents: lowercase, strip punctuation, collapse
// whitespace.
func NormalizeMonetary(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = monetaryReplacer.Replace(s)
	s = reSpaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
