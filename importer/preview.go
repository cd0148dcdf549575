package importer

import (
	"property-importer/models"
	"property-importer/utils"
)

const (
	errDuplicateInFile = "Posible duplicado dentro del archivo"

	// defaultSampleSize caps the preview's rendering sample.
	defaultSampleSize = 5
)

// Service is the import engine's single entry point. It is stateless and
// re-entrant: every GeneratePreview call opens its own slug generator via
// newSlugs and works on its own data, so the caller may re-invoke it over the
// same file with different overrides while the operator edits header
// mappings, and identical inputs yield identical previews.
type Service struct {
	newSlugs   func() SlugGenerator
	logger     *utils.Logger
	SampleSize int
}

// NewService creates the import service. newSlugs is called once per
// GeneratePreview to obtain a slug generator for that run.
func NewService(newSlugs func() SlugGenerator, logger *utils.Logger) *Service {
	return &Service{
		newSlugs:   newSlugs,
		logger:     logger,
		SampleSize: defaultSampleSize,
	}
}

// GeneratePreview runs the whole pipeline over raw spreadsheet bytes:
// sheet selection, column mapping (honoring overrides), per-row
// normalization/validation, intra-file duplicate demotion and summary counts.
// It never errors on malformed data; only a structurally unreadable file does.
func (s *Service) GeneratePreview(data []byte, overrides map[string]Override) (*models.ImportPreview, error) {
	sheet, err := readWorkbook(data)
	if err != nil {
		return nil, err
	}

	mapping := MapColumns(sheet.Headers, sheet.Rows, overrides)
	rows := NewTransformer(s.newSlugs(), s.logger).ValidateAndTransformRows(mapping.MappedRows)

	// Demote duplicates: they keep their data for display but leave the
	// valid set.
	duplicates := DetectDuplicatesInFile(rows)
	for i := range rows {
		if _, dup := duplicates[rows[i].RowNumber]; dup {
			rows[i].Errors = append(rows[i].Errors, errDuplicateInFile)
			rows[i].Property = nil
		}
	}

	preview := &models.ImportPreview{
		SheetName:       sheet.SheetName,
		SheetNames:      sheet.SheetNames,
		Rows:            rows,
		ColumnMappings:  mapping.ColumnMappings,
		UnmappedHeaders: mapping.UnmappedHeaders,
		TotalRows:       len(rows),
		DuplicateCount:  len(duplicates),
	}
	for i := range rows {
		if rows[i].Valid() {
			preview.ValidCount++
		} else {
			preview.ErrorCount++
		}
	}
	preview.Sample = buildSample(rows, s.sampleSize())

	s.logger.Info("[import] Sheet %q: %d rows — %d valid, %d errors, %d duplicates (%d headers unmapped)",
		preview.SheetName, preview.TotalRows, preview.ValidCount,
		preview.ErrorCount, preview.DuplicateCount, len(preview.UnmappedHeaders))
	return preview, nil
}

func (s *Service) sampleSize() int {
	if s.SampleSize > 0 {
		return s.SampleSize
	}
	return defaultSampleSize
}

// buildSample projects the first few rows into flat records for UI rendering.
// Invalid rows become dashed placeholders flagged with HasError.
func buildSample(rows []models.ImportRow, limit int) []models.PreviewSample {
	if limit > len(rows) {
		limit = len(rows)
	}
	sample := make([]models.PreviewSample, 0, limit)
	for i := 0; i < limit; i++ {
		if !rows[i].Valid() {
			sample = append(sample, models.PreviewSample{
				Title:        "—",
				PropertyType: "—",
				BusinessType: "—",
				City:         "—",
				HasError:     true,
			})
			continue
		}
		p := rows[i].Property
		price := p.SalePrice
		if price == 0 {
			price = p.RentPrice
		}
		area := 0.0
		if p.BuiltArea != nil {
			area = *p.BuiltArea
		}
		sample = append(sample, models.PreviewSample{
			Title:        p.Title["es"],
			PropertyType: p.PropertyType,
			BusinessType: p.BusinessType,
			Price:        price,
			City:         p.City,
			Area:         area,
			Bedrooms:     p.Bedrooms,
			Bathrooms:    p.Bathrooms,
			ImageCount:   len(p.Images),
		})
	}
	return sample
}
