package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"property-importer/models"
)

// CSVWriter writes the operator-facing import report: one line per processed
// row with its status and error text. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the report file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{
		"row_number", "status", "errors", "title", "property_type", "sale_price", "rent_price", "city",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRows appends one report line per import row.
func (c *CSVWriter) WriteRows(rows []models.ImportRow) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range rows {
		if err := c.writer.Write(reportLine(&rows[i])); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func reportLine(row *models.ImportRow) []string {
	status := "valida"
	title, propertyType, city := "", "", ""
	salePrice, rentPrice := "", ""

	if row.Valid() {
		p := row.Property
		title = p.Title["es"]
		propertyType = p.PropertyType
		city = p.City
		salePrice = strconv.FormatFloat(p.SalePrice, 'f', -1, 64)
		rentPrice = strconv.FormatFloat(p.RentPrice, 'f', -1, 64)
	} else {
		status = "error"
	}

	return []string{
		strconv.Itoa(row.RowNumber),
		status,
		strings.Join(row.Errors, "; "),
		title,
		propertyType,
		salePrice,
		rentPrice,
		city,
	}
}
