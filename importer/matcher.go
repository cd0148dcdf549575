package importer

import (
	"sort"
	"strings"

	"property-importer/models"
)

// minContainsLen is the floor both sides of a containment test must reach.
// It keeps short keys like "ref" from matching inside unrelated words. The
// value is an empirically tuned heuristic, not an invariant.
const minContainsLen = 4

// headerAbbreviations expands truncated header prefixes before a last-chance
// dictionary retry ("Habitac." → "habitaciones").
var headerAbbreviations = map[string]string{
	"habitac": "habitaciones",
	"hab":     "habitaciones",
	"alc":     "alcobas",
	"dorm":    "dormitorios",
	"ban":     "banos",
	"parq":    "parqueaderos",
	"gar":     "garajes",
	"admin":   "administracion",
	"admon":   "administracion",
	"desc":    "descripcion",
	"dir":     "direccion",
	"tel":     "telefono",
	"cel":     "celular",
	"comis":   "comision",
	"caract":  "caracteristicas",
	"dispon":  "disponibilidad",
}

type dictionaryKey struct {
	raw        string
	normalized string
	field      string
}

// containsKeys holds every dictionary key with its normalized form, longest
// first, so containment scans are deterministic and most-specific-wins.
var containsKeys = buildContainsKeys()

// abbreviationPrefixes holds abbreviation keys longest first, so "habitac"
// is tried before "hab".
var abbreviationPrefixes = buildAbbreviationPrefixes()

func buildContainsKeys() []dictionaryKey {
	keys := make([]dictionaryKey, 0, len(headerDictionary))
	for k, field := range headerDictionary {
		keys = append(keys, dictionaryKey{raw: k, normalized: NormalizeHeader(k), field: field})
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i].normalized) != len(keys[j].normalized) {
			return len(keys[i].normalized) > len(keys[j].normalized)
		}
		return keys[i].normalized < keys[j].normalized
	})
	return keys
}

func buildAbbreviationPrefixes() []string {
	prefixes := make([]string, 0, len(headerAbbreviations))
	for p := range headerAbbreviations {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}

// MatchColumn decides which canonical field a raw header represents.
// Tiers, first hit wins: exact dictionary lookup, exact lookup on the
// normalized header, bidirectional containment (longest key wins), and
// abbreviation-expansion fuzzy retry. Returns ok=false when nothing matches.
func MatchColumn(rawHeader string) (models.ColumnMapping, bool) {
	// Tier 1: verbatim lookup, only lowercased and trimmed.
	key := strings.ToLower(strings.TrimSpace(rawHeader))
	if field, ok := headerDictionary[key]; ok {
		return models.ColumnMapping{RawHeader: rawHeader, MappedField: field, Confidence: models.ConfidenceExact}, true
	}

	// Tier 2: lookup on the normalized form.
	normalized := NormalizeHeader(rawHeader)
	if field, ok := headerDictionary[normalized]; ok {
		return models.ColumnMapping{RawHeader: rawHeader, MappedField: field, Confidence: models.ConfidenceExact}, true
	}

	// Tier 3: containment either way, both sides at least minContainsLen.
	if field, ok := containsMatch(normalized); ok {
		return models.ColumnMapping{RawHeader: rawHeader, MappedField: field, Confidence: models.ConfidenceContains}, true
	}

	// Tier 4: expand abbreviated tokens and retry exact, then containment.
	expanded, changed := expandAbbreviations(normalized)
	if changed {
		if field, ok := headerDictionary[expanded]; ok {
			return models.ColumnMapping{RawHeader: rawHeader, MappedField: field, Confidence: models.ConfidenceFuzzy}, true
		}
		if field, ok := containsMatch(expanded); ok {
			return models.ColumnMapping{RawHeader: rawHeader, MappedField: field, Confidence: models.ConfidenceFuzzy}, true
		}
	}

	return models.ColumnMapping{}, false
}

func containsMatch(normalizedHeader string) (string, bool) {
	if len(normalizedHeader) < minContainsLen {
		return "", false
	}
	for _, k := range containsKeys {
		if len(k.normalized) < minContainsLen {
			continue
		}
		if strings.Contains(normalizedHeader, k.normalized) || strings.Contains(k.normalized, normalizedHeader) {
			return k.field, true
		}
	}
	return "", false
}

// expandAbbreviations rewrites every token that starts with a known
// abbreviation prefix to the full word. A trailing period is stripped first
// ("Parq." → "parq" → "parqueaderos").
func expandAbbreviations(normalizedHeader string) (string, bool) {
	tokens := strings.Fields(normalizedHeader)
	changed := false
	for i, token := range tokens {
		token = strings.TrimSuffix(token, ".")
		for _, prefix := range abbreviationPrefixes {
			if !strings.HasPrefix(token, prefix) {
				continue
			}
			expansion := headerAbbreviations[prefix]
			if token != expansion {
				tokens[i] = expansion
				changed = true
			} else if tokens[i] != token {
				tokens[i] = token // only the period was dropped
				changed = true
			}
			break
		}
	}
	return strings.Join(tokens, " "), changed
}
