// Package geo holds the geographic reference data and rendering logic for
// species occurrence maps: Brazil's five macro-regions, their member states
// and display colors, the token normalization used to match free-text
// region/state descriptors against them, and the choropleth renderer.
package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics converts accented characters to their unaccented base form
// (NFD decomposition, removal of combining marks, NFC recomposition).
// The input is returned unchanged if the transformation fails.
func StripDiacritics(s string) string {
	// A transformer carries state between writes, so build a fresh chain
	// per call rather than sharing one across goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// NormalizeToken brings a free-text region or state token to the canonical
// comparison form: trimmed, diacritic-stripped, uppercased. This is the same
// normalization applied to the state-name property of the polygon dataset,
// so descriptor tokens and dataset names meet in one namespace.
func NormalizeToken(s string) string {
	return strings.ToUpper(StripDiacritics(strings.TrimSpace(s)))
}

// Fold brings a name to the form used by the search engine's normalized
// tiers: trimmed, diacritic-stripped, lowercased.
func Fold(s string) string {
	return strings.ToLower(StripDiacritics(strings.TrimSpace(s)))
}

// SplitTokens splits a free-text geographic descriptor on commas and pipes
// and returns the non-empty trimmed tokens. The descriptor format is
// deliberately loose; a single token may name a state or a whole
// macro-region.
func SplitTokens(descriptor string) []string {
	fields := strings.FieldsFunc(descriptor, func(r rune) bool {
		return r == ',' || r == '|'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tokens = append(tokens, t)
		}
	}

	return tokens
}
