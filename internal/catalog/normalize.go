package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics removes diacritical marks from a string (e.g., "Dégradé" -> "Degrade").
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizeStyleName normalizes a style name for comparison
// (lowercase, no diacritics, spaces for dashes).
func NormalizeStyleName(name string) string {
	name = RemoveDiacritics(name)
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

// containsNormalized reports whether the normalized form of name contains the
// already-normalized query.
func containsNormalized(name, normalizedQuery string) bool {
	return strings.Contains(NormalizeStyleName(name), normalizedQuery)
}
