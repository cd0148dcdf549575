package services

import (
	"testing"

	"property-importer/models"
	"property-importer/utils"
)

func sampleProperties() []*models.Property {
	return []*models.Property{
		{Title: models.LocalizedText{"es": "Apto A"}, PropertyType: "apartamento", BusinessType: "venta", City: "Bogotá", SalePrice: 200000000},
		{Title: models.LocalizedText{"es": "Apto B"}, PropertyType: "apartamento", BusinessType: "venta", City: "Bogotá", SalePrice: 50000000},
		{Title: models.LocalizedText{"es": "Casa C"}, PropertyType: "casa", BusinessType: "venta", City: "Medellín", SalePrice: 120000000},
		{Title: models.LocalizedText{"es": "Local D"}, PropertyType: "local", BusinessType: "arriendo", City: "Cali", RentPrice: 3000000},
		{Title: models.LocalizedText{"es": "Lote E"}, PropertyType: "lote", BusinessType: "venta", City: "Medellín"},
	}
}

func TestSummaryCounts(t *testing.T) {
	svc := NewSummaryService(utils.NewLoggerWithLevel(utils.LevelError))
	r := svc.Generate(sampleProperties())

	if r.TotalProperties != 5 {
		t.Errorf("TotalProperties: got %d, want 5", r.TotalProperties)
	}
	if r.ByPropertyType["apartamento"] != 2 {
		t.Errorf("apartamento count: got %d, want 2", r.ByPropertyType["apartamento"])
	}
	if r.ByBusinessType["venta"] != 4 {
		t.Errorf("venta count: got %d, want 4", r.ByBusinessType["venta"])
	}
	if r.PropertiesByCity["Medellín"] != 2 {
		t.Errorf("Medellín count: got %d, want 2", r.PropertiesByCity["Medellín"])
	}
}

func TestSummaryPrices(t *testing.T) {
	svc := NewSummaryService(utils.NewLoggerWithLevel(utils.LevelError))
	r := svc.Generate(sampleProperties())

	// Zero-priced lote is excluded; the rented local counts its rent price.
	wantAvg := 93250000.0
	if r.AveragePrice != wantAvg {
		t.Errorf("AveragePrice: got %.2f, want %.2f", r.AveragePrice, wantAvg)
	}
	if r.MinPrice != 3000000 {
		t.Errorf("MinPrice: got %.2f, want 3000000", r.MinPrice)
	}
	if r.MaxPrice != 200000000 {
		t.Errorf("MaxPrice: got %.2f, want 200000000", r.MaxPrice)
	}
	if r.MostExpensive == nil || r.MostExpensive.Title["es"] != "Apto A" {
		t.Errorf("MostExpensive: %+v", r.MostExpensive)
	}
}

func TestSummaryEmptyInput(t *testing.T) {
	svc := NewSummaryService(utils.NewLoggerWithLevel(utils.LevelError))
	r := svc.Generate(nil)

	if r.TotalProperties != 0 || r.AveragePrice != 0 || r.MostExpensive != nil {
		t.Errorf("empty input should yield a zero summary: %+v", r)
	}
}
