package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"property-importer/models"
)

// preferredSheetNames are the sheet names back-office exports typically give
// their data sheet. A case-insensitive exact match wins over the first sheet.
var preferredSheetNames = map[string]struct{}{
	"propiedades": {},
	"inmuebles":   {},
	"properties":  {},
	"datos":       {},
	"listado":     {},
	"inventario":  {},
	"catalogo":    {},
}

// sheetData is one sheet read into header-keyed rows, blank rows dropped.
type sheetData struct {
	SheetName  string
	SheetNames []string
	Headers    []string
	Rows       []models.RawRow
}

// readWorkbook parses spreadsheet bytes, picks the most relevant sheet and
// extracts its rows keyed by the header row. Empty cells become nil; rows
// where every cell is blank are dropped (exports routinely carry trailing
// whitespace rows). Only a structurally unreadable file returns an error.
func readWorkbook(data []byte) (*sheetData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importer: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("importer: workbook has no sheets")
	}

	selected := sheets[0]
	for _, name := range sheets {
		if _, ok := preferredSheetNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			selected = name
			break
		}
	}

	rows, err := f.GetRows(selected)
	if err != nil {
		return nil, fmt.Errorf("importer: read sheet %q: %w", selected, err)
	}

	out := &sheetData{
		SheetName:  selected,
		SheetNames: sheets,
		Headers:    []string{},
		Rows:       []models.RawRow{},
	}
	if len(rows) == 0 {
		return out, nil
	}

	// Headers come from the first row. Blank header cells are skipped; when
	// a header repeats, the first column keeps the name.
	seen := make(map[string]struct{}, len(rows[0]))
	headerIndex := make(map[int]string, len(rows[0]))
	for col, cell := range rows[0] {
		header := strings.TrimSpace(cell)
		if header == "" {
			continue
		}
		if _, dup := seen[header]; dup {
			continue
		}
		seen[header] = struct{}{}
		out.Headers = append(out.Headers, header)
		headerIndex[col] = header
	}

	for _, cells := range rows[1:] {
		row := make(models.RawRow, len(out.Headers))
		blank := true
		for col, header := range headerIndex {
			if col >= len(cells) || strings.TrimSpace(cells[col]) == "" {
				row[header] = nil
				continue
			}
			row[header] = cells[col]
			blank = false
		}
		if blank {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
