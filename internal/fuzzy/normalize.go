// Package fuzzy implements approximate string matching for address fragments: key
// normalisation, a composite 0-100 similarity score and a ranked candidate selector.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey returns the comparison key for a text field: lower-cased, trimmed, with internal
// whitespace runs collapsed. It never fails; the empty string normalizes to "".
func NormalizeKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Process prepares a string for scoring. Combining marks are dropped after canonical
// decomposition so "Ōtaki" and "Otaki" compare equal, and anything that is not a letter or
// digit becomes a token separator.
func Process(text string) string {
	folded := strings.Map(func(r rune) rune {
		switch {
		case unicode.Is(unicode.Mn, r):
			return -1
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, norm.NFD.String(text))

	return strings.Join(strings.Fields(folded), " ")
}
