// Package planparse reads free-form care advice text back into typed,
// clamped care plan values. Every parser fails soft: unrecognized text
// yields ok == false, never an error.
package planparse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// preFold runs before NFKC: vulgar fractions so "1½" reads as "1 1/2" rather
// than "11/2", and the ordinal indicator which NFKC would fold to "o".
var preFold = strings.NewReplacer(
	"º", "°",
	"¼", " 1/4", "½", " 1/2", "¾", " 3/4",
	"⅓", " 1/3", "⅔", " 2/3",
	"⅕", " 1/5", "⅖", " 2/5", "⅗", " 3/5", "⅘", " 4/5",
	"⅙", " 1/6", "⅚", " 5/6",
	"⅛", " 1/8", "⅜", " 3/8", "⅝", " 5/8", "⅞", " 7/8",
)

var punctuation = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
	"⁄", "/", // fraction slash
	"∕", "/", // division slash
)

// digitGroup matches a thousands separator inside a number, as in "1,500"
var digitGroup = regexp.MustCompile(`(\d),(\d{3})\b`)

// Normalize prepares advice text for matching: compatibility-folds unicode,
// lowercases, maps dash and slash variants to ASCII, drops thousands
// separators and collapses whitespace.
func Normalize(text string) string {
	s := preFold.Replace(text)
	s = norm.NFKC.String(s)
	s = cases.Lower(language.Und).String(s) // Casers are stateful, so not shared
	s = punctuation.Replace(s)
	// matches cannot overlap, so "1,500,000" needs a second pass
	for digitGroup.MatchString(s) {
		s = digitGroup.ReplaceAllString(s, "${1}${2}")
	}
	return strings.Join(strings.Fields(s), " ")
}
