package importer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// accentStripper decomposes to NFD and drops combining marks, so
	// "Descripción" and "Descripcion" normalize identically.
	accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// bracketRe removes grouping characters often wrapping units: "Area (m2)".
	bracketRe = regexp.MustCompile(`[\[\](){}]`)
	// ordinalRe rewrites number markers so "N° Habitaciones", "No. Habitaciones"
	// and "# Habitaciones" all align with "numero habitaciones".
	ordinalRe = regexp.MustCompile(`n[°º]|#|\b(?:no|num)\b\.?`)
	// unitTokenRe drops area and currency tokens embedded in headers.
	unitTokenRe = regexp.MustCompile(`\b(?:m2|mt2|mts|mt|cop|usd)\b`)
)

// NormalizeHeader reduces a raw column header to a canonical comparable form:
// lowercased, accent-free, without bracket/unit/currency noise, with ordinal
// markers rewritten to the word "numero" and whitespace collapsed. It is pure
// and total.
func NormalizeHeader(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = stripAccents(s)
	s = strings.NewReplacer("m²", " ", "$", " ").Replace(s)
	s = bracketRe.ReplaceAllString(s, " ")
	s = ordinalRe.ReplaceAllString(s, " numero ")
	s = unitTokenRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// stripAccents removes diacritics. On a (theoretical) transform failure the
// input is returned unchanged rather than propagating an error.
func stripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}
