package importer

import "property-importer/models"

// Override is a manual header assignment supplied by the operator. It either
// forces a header onto a canonical field or ignores the header entirely; the
// tagged form replaces the ambiguous "_ignore" sentinel string some UIs send.
type Override struct {
	field  string
	ignore bool
}

// MapTo builds an override that maps a header to the given canonical field.
func MapTo(field string) Override {
	return Override{field: field}
}

// IgnoreColumn builds an override that drops a header from mapping entirely:
// it will appear in neither the column mappings nor the unmapped list.
func IgnoreColumn() Override {
	return Override{ignore: true}
}

// MappingResult is the outcome of mapping one file's headers.
type MappingResult struct {
	// MappedRows are the input rows re-keyed from raw headers to canonical
	// field names. Unmapped headers are simply dropped from each row.
	MappedRows []models.RawRow
	// ColumnMappings lists every recognized header, in column order.
	ColumnMappings []models.ColumnMapping
	// UnmappedHeaders lists headers nothing matched (and that were not
	// explicitly ignored), for the operator to resolve manually.
	UnmappedHeaders []string
}

// MapColumns maps a file's headers onto canonical fields, honoring manual
// overrides. Each canonical field may be claimed by at most one header: the
// first header in column order wins, later headers that would map to an
// already-claimed field stay unmapped. Empty input yields an empty result.
func MapColumns(headers []string, rawRows []models.RawRow, overrides map[string]Override) MappingResult {
	result := MappingResult{
		ColumnMappings:  []models.ColumnMapping{},
		UnmappedHeaders: []string{},
	}
	if len(headers) == 0 || len(rawRows) == 0 {
		result.MappedRows = []models.RawRow{}
		return result
	}

	claimed := make(map[string]bool, len(headers))
	for _, header := range headers {
		if ov, ok := overrides[header]; ok {
			if ov.ignore {
				continue
			}
			if ov.field != "" && !claimed[ov.field] {
				claimed[ov.field] = true
				result.ColumnMappings = append(result.ColumnMappings, models.ColumnMapping{
					RawHeader:   header,
					MappedField: ov.field,
					Confidence:  models.ConfidenceExact,
				})
			} else {
				result.UnmappedHeaders = append(result.UnmappedHeaders, header)
			}
			continue
		}

		mapping, ok := MatchColumn(header)
		if !ok || claimed[mapping.MappedField] {
			result.UnmappedHeaders = append(result.UnmappedHeaders, header)
			continue
		}
		claimed[mapping.MappedField] = true
		result.ColumnMappings = append(result.ColumnMappings, mapping)
	}

	result.MappedRows = make([]models.RawRow, 0, len(rawRows))
	for _, raw := range rawRows {
		mapped := make(models.RawRow, len(result.ColumnMappings))
		for _, m := range result.ColumnMappings {
			if v, ok := raw[m.RawHeader]; ok {
				mapped[m.MappedField] = v
			}
		}
		result.MappedRows = append(result.MappedRows, mapped)
	}
	return result
}
