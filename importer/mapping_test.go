package importer

import (
	"testing"

	"property-importer/models"
)

func singleRow(headers ...string) []models.RawRow {
	row := make(models.RawRow, len(headers))
	for _, h := range headers {
		row[h] = "x"
	}
	return []models.RawRow{row}
}

func TestMapColumnsEmptyInput(t *testing.T) {
	result := MapColumns(nil, nil, nil)
	if len(result.MappedRows) != 0 || len(result.ColumnMappings) != 0 || len(result.UnmappedHeaders) != 0 {
		t.Errorf("empty input should map to empty output, got %+v", result)
	}
}

func TestMapColumnsFieldExclusivity(t *testing.T) {
	headers := []string{"Precio", "Precio de venta", "Ciudad"}
	result := MapColumns(headers, singleRow(headers...), nil)

	if len(result.ColumnMappings) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(result.ColumnMappings))
	}
	if result.ColumnMappings[0].RawHeader != "Precio" || result.ColumnMappings[0].MappedField != FieldSalePrice {
		t.Errorf("first mapping = %+v; want Precio → sale_price", result.ColumnMappings[0])
	}
	if len(result.UnmappedHeaders) != 1 || result.UnmappedHeaders[0] != "Precio de venta" {
		t.Errorf("UnmappedHeaders = %v; want [Precio de venta]", result.UnmappedHeaders)
	}
}

func TestMapColumnsManualOverride(t *testing.T) {
	headers := []string{"Orientación"}
	overrides := map[string]Override{"Orientación": MapTo(FieldZone)}
	result := MapColumns(headers, singleRow(headers...), overrides)

	if len(result.ColumnMappings) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(result.ColumnMappings))
	}
	m := result.ColumnMappings[0]
	if m.MappedField != FieldZone || m.Confidence != models.ConfidenceExact {
		t.Errorf("override mapping = %+v; want zone/exact", m)
	}
	if len(result.UnmappedHeaders) != 0 {
		t.Errorf("UnmappedHeaders = %v; want empty", result.UnmappedHeaders)
	}
}

func TestMapColumnsIgnoreOverride(t *testing.T) {
	// An ignored header appears in neither the mappings nor the unmapped list.
	headers := []string{"Orientación", "Ciudad"}
	overrides := map[string]Override{"Orientación": IgnoreColumn()}
	result := MapColumns(headers, singleRow(headers...), overrides)

	for _, m := range result.ColumnMappings {
		if m.RawHeader == "Orientación" {
			t.Errorf("ignored header mapped: %+v", m)
		}
	}
	for _, h := range result.UnmappedHeaders {
		if h == "Orientación" {
			t.Errorf("ignored header reported unmapped")
		}
	}
	if len(result.ColumnMappings) != 1 || result.ColumnMappings[0].MappedField != FieldCity {
		t.Errorf("expected only Ciudad mapped, got %+v", result.ColumnMappings)
	}
}

func TestMapColumnsOverrideSupersedesAutomatic(t *testing.T) {
	// "Precio" would auto-map to sale_price; the override redirects it.
	headers := []string{"Precio"}
	overrides := map[string]Override{"Precio": MapTo(FieldRentPrice)}
	result := MapColumns(headers, singleRow(headers...), overrides)

	if len(result.ColumnMappings) != 1 || result.ColumnMappings[0].MappedField != FieldRentPrice {
		t.Errorf("mappings = %+v; want Precio → rent_price", result.ColumnMappings)
	}
}

func TestMapColumnsUnmappedHeaderSurfaced(t *testing.T) {
	headers := []string{"Orientación", "Título"}
	result := MapColumns(headers, singleRow(headers...), nil)

	if len(result.UnmappedHeaders) != 1 || result.UnmappedHeaders[0] != "Orientación" {
		t.Errorf("UnmappedHeaders = %v; want [Orientación]", result.UnmappedHeaders)
	}
	for _, m := range result.ColumnMappings {
		if m.RawHeader == "Orientación" {
			t.Errorf("unmatchable header present in mappings: %+v", m)
		}
	}
}

func TestMapColumnsRekeysRows(t *testing.T) {
	headers := []string{"Título", "Ciudad", "Orientación"}
	rows := []models.RawRow{
		{"Título": "Apto centro", "Ciudad": "Bogotá", "Orientación": "norte"},
	}
	result := MapColumns(headers, rows, nil)

	if len(result.MappedRows) != 1 {
		t.Fatalf("expected 1 mapped row, got %d", len(result.MappedRows))
	}
	mapped := result.MappedRows[0]
	if mapped[FieldTitle] != "Apto centro" || mapped[FieldCity] != "Bogotá" {
		t.Errorf("mapped row = %v", mapped)
	}
	if _, present := mapped["Orientación"]; present {
		t.Errorf("unmapped header leaked into mapped row: %v", mapped)
	}
}
