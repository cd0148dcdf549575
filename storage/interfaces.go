package storage

import (
	"github.com/google/uuid"

	"property-importer/models"
)

// InsertResult reports the outcome of persisting one property. Inserted is
// false when the slug was already taken by an earlier import.
type InsertResult struct {
	Slug     string
	Inserted bool
}

// PropertyWriter is the interface the commit step persists through. The batch
// ID tags every row of one commit run.
type PropertyWriter interface {
	Write(batchID uuid.UUID, properties []*models.Property) ([]InsertResult, error)
	Close() error
}

// ReportWriter is the interface for writing the operator-facing import report.
type ReportWriter interface {
	WriteRows(rows []models.ImportRow) error
	Close() error
}
