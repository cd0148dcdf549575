package importer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// currencyPrefixRe strips leading currency markers: "$", "US$", "COP".
	currencyPrefixRe = regexp.MustCompile(`(?i)^(?:us\$|cop|\$)\s*`)
	// unitSuffixRe strips trailing measurement units: "85 m2", "2 ha".
	unitSuffixRe = regexp.MustCompile(`(?i)\s*(?:m²|m2|mts|mt|ha|m)$`)
	// colombianFormatRe matches dot-thousands with optional comma decimals:
	// "350.000.000" or "1.234.567,89".
	colombianFormatRe = regexp.MustCompile(`^\d{1,3}(\.\d{3})+(,\d{1,2})?$`)
	// commaDecimalRe matches a plain comma-as-decimal number: "85,5".
	commaDecimalRe = regexp.MustCompile(`^\d+,\d{1,2}$`)
	// usFormatRe matches comma-thousands with optional dot decimals:
	// "1,200,000.50".
	usFormatRe = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)
	// nonNumericRe drops everything that cannot be part of a plain float.
	nonNumericRe = regexp.MustCompile(`[^0-9.\-]`)

	// listDelimiterRe splits feature/image cells on the delimiters real
	// exports actually use.
	listDelimiterRe = regexp.MustCompile(`[,;|\n]`)
)

// CleanNumericValue coerces a spreadsheet cell to a number, tolerating
// Colombian (dot-thousands, comma-decimal) and US (comma-thousands,
// dot-decimal) formats, currency prefixes and unit suffixes. Returns nil for
// empty/placeholder cells and anything that cannot be parsed.
//
// Examples:
//
//	"$350.000.000" → 350000000
//	"85,5"         → 85.5
//	"1,200,000.50" → 1200000.5
//	"N/A"          → nil
func CleanNumericValue(value any) *float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case float32:
		return CleanNumericValue(float64(v))
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		return cleanNumericString(v)
	default:
		return cleanNumericString(fmt.Sprintf("%v", value))
	}
}

func cleanNumericString(raw string) *float64 {
	s := strings.TrimSpace(raw)
	s = currencyPrefixRe.ReplaceAllString(s, "")
	s = unitSuffixRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "", "-", "n/a", "na":
		return nil
	}

	switch {
	case colombianFormatRe.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case commaDecimalRe.MatchString(s):
		s = strings.ReplaceAll(s, ",", ".")
	case usFormatRe.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = nonNumericRe.ReplaceAllString(s, "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ToNumber is CleanNumericValue with a zero fallback, for required numeric
// fields (prices, fees) that must never be absent.
func ToNumber(value any) float64 {
	if f := CleanNumericValue(value); f != nil {
		return *f
	}
	return 0
}

// ToNullableNumber preserves nil for optional measurement fields (areas),
// so "absent" stays distinguishable from "zero".
func ToNullableNumber(value any) *float64 {
	return CleanNumericValue(value)
}

// ToCount parses a cell as a non-negative integer count with a zero fallback.
func ToCount(value any) int {
	n := int(ToNumber(value))
	if n < 0 {
		return 0
	}
	return n
}

// ToNullableInt parses a cell as an optional integer (stratum, year built).
func ToNullableInt(value any) *int {
	f := CleanNumericValue(value)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// CellString renders a loosely-typed cell as a trimmed string. Floats that
// carry no fractional part print without a decimal point, matching how the
// value looked in the spreadsheet.
func CellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", value))
	}
}

// Enum defaults. Malformed categorical cells never block a row; they fall
// back to these documented values.
const (
	DefaultPropertyType   = "apartamento"
	DefaultBusinessType   = "venta"
	DefaultPropertyStatus = "usado"
	DefaultAvailability   = "disponible"
)

var propertyTypeSynonyms = map[string]string{
	"apartamento":     "apartamento",
	"apto":            "apartamento",
	"apt":             "apartamento",
	"apartment":       "apartamento",
	"flat":            "apartamento",
	"apartaestudio":   "apartaestudio",
	"aparta estudio":  "apartaestudio",
	"estudio":         "apartaestudio",
	"studio":          "apartaestudio",
	"casa":            "casa",
	"house":           "casa",
	"casa campestre":  "casa_campestre",
	"campestre":       "casa_campestre",
	"country house":   "casa_campestre",
	"local":           "local",
	"local comercial": "local",
	"shop":            "local",
	"oficina":         "oficina",
	"office":          "oficina",
	"consultorio":     "oficina",
	"bodega":          "bodega",
	"warehouse":       "bodega",
	"lote":            "lote",
	"terreno":         "lote",
	"land":            "lote",
	"lot":             "lote",
	"finca":           "finca",
	"farm":            "finca",
	"hacienda":        "finca",
	"penthouse":       "penthouse",
	"atico":           "penthouse",
	"ático":           "penthouse",
}

var businessTypeSynonyms = map[string]string{
	"venta":            "venta",
	"sale":             "venta",
	"vender":           "venta",
	"se vende":         "venta",
	"arriendo":         "arriendo",
	"renta":            "arriendo",
	"rent":             "arriendo",
	"alquiler":         "arriendo",
	"arrendamiento":    "arriendo",
	"se arrienda":      "arriendo",
	"venta y arriendo": "venta_arriendo",
	"venta/arriendo":   "venta_arriendo",
	"venta o arriendo": "venta_arriendo",
	"ambos":            "venta_arriendo",
	"sale and rent":    "venta_arriendo",
}

var propertyStatusSynonyms = map[string]string{
	"nuevo":         "nuevo",
	"new":           "nuevo",
	"estrenar":      "nuevo",
	"para estrenar": "nuevo",
	"sobre planos":  "sobre_planos",
	"en planos":     "sobre_planos",
	"preventa":      "sobre_planos",
	"off plan":      "sobre_planos",
	"remodelado":    "remodelado",
	"renovado":      "remodelado",
	"remodeled":     "remodelado",
	"usado":         "usado",
	"used":          "usado",
	"segunda mano":  "usado",
}

var availabilitySynonyms = map[string]string{
	"disponible":    "disponible",
	"available":     "disponible",
	"libre":         "disponible",
	"si":            "disponible",
	"sí":            "disponible",
	"no disponible": "no_disponible",
	"ocupado":       "no_disponible",
	"unavailable":   "no_disponible",
	"no":            "no_disponible",
	"reservado":     "reservado",
	"reserved":      "reservado",
	"separado":      "reservado",
	"vendido":       "vendido",
	"sold":          "vendido",
	"arrendado":     "arrendado",
	"rentado":       "arrendado",
	"rented":        "arrendado",
}

func normalizeEnum(value any, synonyms map[string]string, fallback string) string {
	key := strings.ToLower(CellString(value))
	if mapped, ok := synonyms[key]; ok {
		return mapped
	}
	return fallback
}

// NormalizePropertyType maps a raw cell to a canonical property type,
// defaulting to "apartamento".
func NormalizePropertyType(value any) string {
	return normalizeEnum(value, propertyTypeSynonyms, DefaultPropertyType)
}

// NormalizeBusinessType maps a raw cell to a canonical business type,
// defaulting to "venta".
func NormalizeBusinessType(value any) string {
	return normalizeEnum(value, businessTypeSynonyms, DefaultBusinessType)
}

// NormalizePropertyStatus maps a raw cell to a canonical status, defaulting
// to "usado".
func NormalizePropertyStatus(value any) string {
	return normalizeEnum(value, propertyStatusSynonyms, DefaultPropertyStatus)
}

// NormalizeAvailability maps a raw cell to a canonical availability,
// defaulting to "disponible".
func NormalizeAvailability(value any) string {
	return normalizeEnum(value, availabilitySynonyms, DefaultAvailability)
}

// ParseFeatureList splits a cell on comma/semicolon/pipe/newline into trimmed,
// non-empty feature strings, preserving order.
func ParseFeatureList(value any) []string {
	return splitList(value, nil)
}

// ParseImageURLs splits a cell like ParseFeatureList but keeps only tokens
// that look like http(s) URLs, so captions or "N/A" in an images cell never
// become garbage URLs.
func ParseImageURLs(value any) []string {
	return splitList(value, func(token string) bool {
		return strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://")
	})
}

func splitList(value any, keep func(string) bool) []string {
	raw := CellString(value)
	out := []string{}
	if raw == "" {
		return out
	}
	for _, token := range listDelimiterRe.Split(raw, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if keep != nil && !keep(token) {
			continue
		}
		out = append(out, token)
	}
	return out
}
