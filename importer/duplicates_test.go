package importer

import (
	"testing"

	"property-importer/models"
)

func validRow(rowNumber int, title, city string, salePrice float64, externalCode string) models.ImportRow {
	return models.ImportRow{
		RowNumber: rowNumber,
		Errors:    []string{},
		Property: &models.Property{
			Title:        models.LocalizedText{"es": title},
			City:         city,
			SalePrice:    salePrice,
			ExternalCode: externalCode,
		},
	}
}

func TestDetectDuplicatesFlagsLaterRows(t *testing.T) {
	rows := []models.ImportRow{
		validRow(2, "Apto en Chapinero", "Bogotá", 350000000, "A-1"),
		validRow(3, "Casa en Envigado", "Envigado", 700000000, "B-2"),
		validRow(4, "Apto en Chapinero", "Bogotá", 350000000, "A-1"),
	}

	dups := DetectDuplicatesInFile(rows)
	if len(dups) != 1 {
		t.Fatalf("expected 1 duplicate, got %d", len(dups))
	}
	if _, ok := dups[4]; !ok {
		t.Errorf("expected row 4 flagged, got %v", dups)
	}
}

func TestDetectDuplicatesNormalizesCase(t *testing.T) {
	rows := []models.ImportRow{
		validRow(2, "Apto en Chapinero", "Bogotá", 350000000, ""),
		validRow(3, "  APTO EN CHAPINERO ", "BOGOTÁ", 350000000, ""),
	}

	dups := DetectDuplicatesInFile(rows)
	if _, ok := dups[3]; !ok {
		t.Errorf("case/whitespace variants should collide, got %v", dups)
	}
}

func TestDetectDuplicatesUsesRentPriceWhenNoSale(t *testing.T) {
	a := validRow(2, "Apto arriendo", "Bogotá", 0, "")
	a.Property.RentPrice = 2500000
	b := validRow(3, "Apto arriendo", "Bogotá", 0, "")
	b.Property.RentPrice = 2500000
	c := validRow(4, "Apto arriendo", "Bogotá", 0, "")
	c.Property.RentPrice = 3000000

	dups := DetectDuplicatesInFile([]models.ImportRow{a, b, c})
	if len(dups) != 1 {
		t.Fatalf("expected 1 duplicate, got %v", dups)
	}
	if _, ok := dups[3]; !ok {
		t.Errorf("expected row 3 flagged, got %v", dups)
	}
}

func TestDetectDuplicatesSkipsInvalidRows(t *testing.T) {
	invalid := models.ImportRow{RowNumber: 2, Errors: []string{"Título es requerido (mínimo 3 caracteres)"}}
	valid := validRow(3, "Propiedad sin título", "", 0, "")

	dups := DetectDuplicatesInFile([]models.ImportRow{invalid, valid})
	if len(dups) != 0 {
		t.Errorf("invalid rows must not participate, got %v", dups)
	}
}

func TestDetectDuplicatesDistinctExternalCodes(t *testing.T) {
	rows := []models.ImportRow{
		validRow(2, "Apto en Chapinero", "Bogotá", 350000000, "A-1"),
		validRow(3, "Apto en Chapinero", "Bogotá", 350000000, "A-2"),
	}

	if dups := DetectDuplicatesInFile(rows); len(dups) != 0 {
		t.Errorf("different external codes are not duplicates, got %v", dups)
	}
}
