package models

// RawRow holds one spreadsheet row keyed by its original (or mapped) headers.
// Cell values are whatever the workbook reader produced: string, float64 or nil.
type RawRow map[string]any

// Confidence records which matching tier produced a column mapping.
// It is display metadata only; later pipeline stages never branch on it.
type Confidence string

const (
	ConfidenceExact    Confidence = "exact"
	ConfidenceContains Confidence = "contains"
	ConfidenceFuzzy    Confidence = "fuzzy"
)

// ColumnMapping links one raw spreadsheet header to a canonical property field.
type ColumnMapping struct {
	RawHeader   string     `json:"raw_header"`
	MappedField string     `json:"mapped_field"`
	Confidence  Confidence `json:"confidence"`
}

// LocalizedText holds per-language strings. Imports only populate "es".
type LocalizedText map[string]string

// Property is the canonical, normalized record an import produces.
// Counts and prices default to zero; optional measurements stay nil so
// downstream consumers can tell "absent" from "zero".
type Property struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Slug        string        `json:"slug"`

	PropertyType   string `json:"property_type"`
	BusinessType   string `json:"business_type"`
	PropertyStatus string `json:"property_status"`
	Availability   string `json:"availability"`

	SalePrice float64 `json:"sale_price"`
	RentPrice float64 `json:"rent_price"`
	Currency  string  `json:"currency"`
	AdminFee  float64 `json:"admin_fee"`

	City            string `json:"city"`
	StateDepartment string `json:"state_department"`
	Zone            string `json:"zone"`
	Address         string `json:"address"`
	Locality        string `json:"locality"`

	BuiltArea   *float64 `json:"built_area"`
	PrivateArea *float64 `json:"private_area"`
	LandArea    *float64 `json:"land_area"`

	Bedrooms     int  `json:"bedrooms"`
	Bathrooms    int  `json:"bathrooms"`
	ParkingSpots int  `json:"parking_spots"`
	Stratum      *int `json:"stratum"`
	YearBuilt    *int `json:"year_built"`

	Features []string `json:"features"`

	IsPublished bool `json:"is_published"`
	IsFeatured  bool `json:"is_featured"`

	ExternalCode string `json:"external_code"`

	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
	OwnerEmail string `json:"owner_email"`

	CommissionPercentage float64 `json:"commission_percentage"`
	CommissionNotes      string  `json:"commission_notes"`
	PrivateNotes         string  `json:"private_notes"`

	Images []string `json:"images"`
}

// ImportRow is the per-row unit the pipeline threads through: the original
// data, accumulated validation errors, and, only when Errors is empty, the
// transformed Property.
type ImportRow struct {
	RowNumber int       `json:"row_number"`
	Data      RawRow    `json:"data"`
	Errors    []string  `json:"errors"`
	Property  *Property `json:"property,omitempty"`
}

// Valid reports whether the row survived validation and carries a Property.
func (r *ImportRow) Valid() bool {
	return len(r.Errors) == 0 && r.Property != nil
}

// PreviewSample is a flat projection of one row for UI rendering.
// Invalid rows carry HasError=true and zeroed/dashed fields.
type PreviewSample struct {
	Title        string  `json:"title"`
	PropertyType string  `json:"property_type"`
	BusinessType string  `json:"business_type"`
	Price        float64 `json:"price"`
	City         string  `json:"city"`
	Area         float64 `json:"area"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    int     `json:"bathrooms"`
	ImageCount   int     `json:"image_count"`
	HasError     bool    `json:"has_error"`
}

// ImportPreview is the aggregate result of one preview run over one file.
// It is a pure function of the input bytes and overrides: identical calls
// produce identical previews.
type ImportPreview struct {
	SheetName       string          `json:"sheet_name"`
	SheetNames      []string        `json:"sheet_names"`
	Rows            []ImportRow     `json:"rows"`
	ColumnMappings  []ColumnMapping `json:"column_mappings"`
	UnmappedHeaders []string        `json:"unmapped_headers"`
	TotalRows       int             `json:"total_rows"`
	ValidCount      int             `json:"valid_count"`
	ErrorCount      int             `json:"error_count"`
	DuplicateCount  int             `json:"duplicate_count"`
	Sample          []PreviewSample `json:"sample"`
}

// ValidProperties returns the properties of all rows that passed validation,
// in file order. This is what the commit step hands to storage.
func (p *ImportPreview) ValidProperties() []*Property {
	out := make([]*Property, 0, p.ValidCount)
	for i := range p.Rows {
		if p.Rows[i].Valid() {
			out = append(out, p.Rows[i].Property)
		}
	}
	return out
}

// ImportSummary holds the computed portfolio stats over imported records.
type ImportSummary struct {
	TotalProperties  int
	AveragePrice     float64
	MinPrice         float64
	MaxPrice         float64
	MostExpensive    *Property
	ByPropertyType   map[string]int
	ByBusinessType   map[string]int
	PropertiesByCity map[string]int
}
