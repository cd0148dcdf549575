package importer

import (
	"strconv"
	"strings"

	"property-importer/models"
)

// rowFingerprint derives the duplicate-detection key for a transformed row:
// a pipe-joined tuple of normalized title, city, built area, the first
// non-zero price and the external code.
func rowFingerprint(p *models.Property) string {
	area := ""
	if p.BuiltArea != nil {
		area = strconv.FormatFloat(*p.BuiltArea, 'f', -1, 64)
	}

	price := p.SalePrice
	if price == 0 {
		price = p.RentPrice
	}

	parts := []string{
		strings.ToLower(strings.TrimSpace(p.Title["es"])),
		strings.ToLower(strings.TrimSpace(p.City)),
		area,
		strconv.FormatFloat(price, 'f', -1, 64),
		strings.ToLower(strings.TrimSpace(p.ExternalCode)),
	}
	return strings.Join(parts, "|")
}

// DetectDuplicatesInFile flags rows whose fingerprint collides with an
// earlier row in the same file. Only rows that passed validation (carry a
// Property) participate; the first occurrence of a fingerprint is the
// original and is never flagged. Returns the row numbers of the duplicates.
func DetectDuplicatesInFile(rows []models.ImportRow) map[int]struct{} {
	seen := make(map[string]struct{}, len(rows))
	duplicates := make(map[int]struct{})

	for i := range rows {
		if !rows[i].Valid() {
			continue
		}
		fp := rowFingerprint(rows[i].Property)
		if _, dup := seen[fp]; dup {
			duplicates[rows[i].RowNumber] = struct{}{}
			continue
		}
		seen[fp] = struct{}{}
	}
	return duplicates
}
