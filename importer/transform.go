package importer

import (
	"strings"
	"unicode/utf8"

	"property-importer/models"
	"property-importer/utils"
)

// Validation error texts are operator-facing and stay in Spanish, matching
// the rest of the import UI.
const (
	errTitleRequired = "Título es requerido (mínimo 3 caracteres)"

	// placeholderTitle keeps the title invariant (never empty) even for rows
	// that fail validation and are excluded from the valid set anyway.
	placeholderTitle = "Propiedad sin título"

	minTitleLen     = 3
	defaultCurrency = "COP"
)

// SlugGenerator produces a slug unique across the tenant's existing
// properties. Collision strategy is the collaborator's concern.
type SlugGenerator interface {
	GenerateUniqueSlug(title string) string
}

// Transformer turns mapped raw rows into validated canonical records.
type Transformer struct {
	slugs  SlugGenerator
	logger *utils.Logger
}

// NewTransformer creates a Transformer with the given slug collaborator and
// logger.
func NewTransformer(slugs SlugGenerator, logger *utils.Logger) *Transformer {
	return &Transformer{slugs: slugs, logger: logger}
}

// ValidateAndTransformRows normalizes every mapped row into an ImportRow.
// Row numbers are offset by 2 so they match what the operator sees in the
// spreadsheet (1-based, after the header row). A row carries a non-nil
// Property iff it accumulated no validation errors; field-level coercion
// never errors, it falls back to zero/nil/default values.
func (t *Transformer) ValidateAndTransformRows(mappedRows []models.RawRow) []models.ImportRow {
	rows := make([]models.ImportRow, 0, len(mappedRows))

	for i, raw := range mappedRows {
		row := models.ImportRow{
			RowNumber: i + 2,
			Data:      raw,
			Errors:    []string{},
		}

		title := CellString(raw[FieldTitle])
		if utf8.RuneCountInString(title) < minTitleLen {
			row.Errors = append(row.Errors, errTitleRequired)
			t.logger.Debug("[transform] Row %d rejected: title %q too short", row.RowNumber, title)
		}
		if title == "" {
			title = placeholderTitle
		}

		if len(row.Errors) == 0 {
			row.Property = t.buildProperty(raw, title)
		}
		rows = append(rows, row)
	}

	return rows
}

func (t *Transformer) buildProperty(raw models.RawRow, title string) *models.Property {
	currency := strings.ToUpper(CellString(raw[FieldCurrency]))
	if currency == "" {
		currency = defaultCurrency
	}

	return &models.Property{
		Title:       models.LocalizedText{"es": title},
		Description: models.LocalizedText{"es": CellString(raw[FieldDescription])},
		Slug:        t.slugs.GenerateUniqueSlug(title),

		PropertyType:   NormalizePropertyType(raw[FieldPropertyType]),
		BusinessType:   NormalizeBusinessType(raw[FieldBusinessType]),
		PropertyStatus: NormalizePropertyStatus(raw[FieldPropertyStatus]),
		Availability:   NormalizeAvailability(raw[FieldAvailability]),

		SalePrice: ToNumber(raw[FieldSalePrice]),
		RentPrice: ToNumber(raw[FieldRentPrice]),
		Currency:  currency,
		AdminFee:  ToNumber(raw[FieldAdminFee]),

		City:            CellString(raw[FieldCity]),
		StateDepartment: CellString(raw[FieldStateDepartment]),
		Zone:            CellString(raw[FieldZone]),
		Address:         CellString(raw[FieldAddress]),
		Locality:        CellString(raw[FieldLocality]),

		BuiltArea:   ToNullableNumber(raw[FieldBuiltArea]),
		PrivateArea: ToNullableNumber(raw[FieldPrivateArea]),
		LandArea:    ToNullableNumber(raw[FieldLandArea]),

		Bedrooms:     ToCount(raw[FieldBedrooms]),
		Bathrooms:    ToCount(raw[FieldBathrooms]),
		ParkingSpots: ToCount(raw[FieldParkingSpots]),
		Stratum:      ToNullableInt(raw[FieldStratum]),
		YearBuilt:    ToNullableInt(raw[FieldYearBuilt]),

		Features: ParseFeatureList(raw[FieldFeatures]),

		// Imports go live immediately; curation happens afterwards.
		IsPublished: true,
		IsFeatured:  false,

		ExternalCode: CellString(raw[FieldExternalCode]),

		OwnerName:  CellString(raw[FieldOwnerName]),
		OwnerPhone: CellString(raw[FieldOwnerPhone]),
		OwnerEmail: CellString(raw[FieldOwnerEmail]),

		CommissionPercentage: ToNumber(raw[FieldCommissionPercentage]),
		CommissionNotes:      CellString(raw[FieldCommissionNotes]),
		PrivateNotes:         CellString(raw[FieldPrivateNotes]),

		Images: ParseImageURLs(raw[FieldImages]),
	}
}
