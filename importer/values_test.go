package importer

import (
	"math"
	"reflect"
	"testing"
)

func TestCleanNumericValueStrings(t *testing.T) {
	price := func(f float64) *float64 { return &f }

	tests := []struct {
		raw  string
		want *float64
	}{
		{"$350.000.000", price(350000000)},
		{"350.000.000", price(350000000)},
		{"1.234.567,89", price(1234567.89)},
		{"85,5", price(85.5)},
		{"1,200,000.50", price(1200000.5)},
		{"2,500", price(2500)},
		{"US$ 2,500", price(2500)},
		{"COP 1.500.000", price(1500000)},
		{"120 m2", price(120)},
		{"85.5 m²", price(85.5)},
		{"2 ha", price(2)},
		{"42", price(42)},
		{"3.5", price(3.5)},
		{"", nil},
		{"-", nil},
		{"N/A", nil},
		{"na", nil},
		{"sin dato", nil},
	}

	for _, tt := range tests {
		got := CleanNumericValue(tt.raw)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("CleanNumericValue(%q) = %v; want nil", tt.raw, *got)
		case tt.want != nil && got == nil:
			t.Errorf("CleanNumericValue(%q) = nil; want %v", tt.raw, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("CleanNumericValue(%q) = %v; want %v", tt.raw, *got, *tt.want)
		}
	}
}

func TestCleanNumericValueNonStrings(t *testing.T) {
	if got := CleanNumericValue(nil); got != nil {
		t.Errorf("CleanNumericValue(nil) = %v; want nil", *got)
	}
	if got := CleanNumericValue(42.5); got == nil || *got != 42.5 {
		t.Errorf("CleanNumericValue(42.5) = %v; want 42.5", got)
	}
	if got := CleanNumericValue(7); got == nil || *got != 7 {
		t.Errorf("CleanNumericValue(7) = %v; want 7", got)
	}
	if got := CleanNumericValue(math.NaN()); got != nil {
		t.Errorf("CleanNumericValue(NaN) = %v; want nil", *got)
	}
	if got := CleanNumericValue(math.Inf(1)); got != nil {
		t.Errorf("CleanNumericValue(+Inf) = %v; want nil", *got)
	}
}

func TestToNumberFallsBackToZero(t *testing.T) {
	if got := ToNumber("N/A"); got != 0 {
		t.Errorf("ToNumber(N/A) = %v; want 0", got)
	}
	if got := ToNumber("$350.000.000"); got != 350000000 {
		t.Errorf("ToNumber($350.000.000) = %v; want 350000000", got)
	}
}

func TestToNullableNumberPreservesNil(t *testing.T) {
	if got := ToNullableNumber(""); got != nil {
		t.Errorf("ToNullableNumber(\"\") = %v; want nil", *got)
	}
}

func TestToCount(t *testing.T) {
	tests := []struct {
		raw  any
		want int
	}{
		{"3", 3},
		{"3 alcobas", 3},
		{nil, 0},
		{"", 0},
		{"-2", 0},
	}
	for _, tt := range tests {
		if got := ToCount(tt.raw); got != tt.want {
			t.Errorf("ToCount(%v) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestEnumNormalizers(t *testing.T) {
	tests := []struct {
		fn   func(any) string
		raw  any
		want string
	}{
		{NormalizePropertyType, "Casa", "casa"},
		{NormalizePropertyType, "APTO", "apartamento"},
		{NormalizePropertyType, "bodega", "bodega"},
		{NormalizePropertyType, "castillo", DefaultPropertyType},
		{NormalizePropertyType, nil, DefaultPropertyType},
		{NormalizeBusinessType, "Arriendo", "arriendo"},
		{NormalizeBusinessType, "venta y arriendo", "venta_arriendo"},
		{NormalizeBusinessType, "", DefaultBusinessType},
		{NormalizePropertyStatus, "Para estrenar", "nuevo"},
		{NormalizePropertyStatus, "preventa", "sobre_planos"},
		{NormalizePropertyStatus, "???", DefaultPropertyStatus},
		{NormalizeAvailability, "Reservado", "reservado"},
		{NormalizeAvailability, "vendido", "vendido"},
		{NormalizeAvailability, nil, DefaultAvailability},
	}

	for _, tt := range tests {
		if got := tt.fn(tt.raw); got != tt.want {
			t.Errorf("enum(%v) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseFeatureList(t *testing.T) {
	got := ParseFeatureList("piscina, gimnasio; ascensor|balcón\nterraza, ")
	want := []string{"piscina", "gimnasio", "ascensor", "balcón", "terraza"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFeatureList = %v; want %v", got, want)
	}

	if got := ParseFeatureList(nil); len(got) != 0 {
		t.Errorf("ParseFeatureList(nil) = %v; want empty", got)
	}
}

func TestParseImageURLs(t *testing.T) {
	got := ParseImageURLs("https://cdn.example.com/a.jpg, N/A; foto fachada | http://cdn.example.com/b.jpg")
	want := []string{"https://cdn.example.com/a.jpg", "http://cdn.example.com/b.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseImageURLs = %v; want %v", got, want)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		raw  any
		want string
	}{
		{nil, ""},
		{"  Bogotá ", "Bogotá"},
		{350000000.0, "350000000"},
		{3.5, "3.5"},
		{7, "7"},
	}
	for _, tt := range tests {
		if got := CellString(tt.raw); got != tt.want {
			t.Errorf("CellString(%v) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}
