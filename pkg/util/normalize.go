package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey folds a display string into its uniqueness key: combining
// marks stripped after NFD decomposition, lowercased, and trimmed, so
// "Café " and "cafe" collide.
func NormalizeKey(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, input)
	if err != nil {
		folded = input
	}
	return strings.TrimSpace(strings.ToLower(folded))
}
