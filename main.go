package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"property-importer/config"
	"property-importer/importer"
	"property-importer/models"
	"property-importer/services"
	"property-importer/storage"
	"property-importer/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLoggerWithLevel(utils.ParseLevel(cfg.LogLevel))

	files := os.Args[1:]
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: property-importer <file.xlsx> [more files...]")
		fmt.Fprintln(os.Stderr, "set COMMIT=true to persist valid rows to PostgreSQL")
		os.Exit(1)
	}

	logger.Info("=== Property Import starting ===")
	logger.Info("Config — files: %d | max rows/file: %d | concurrency: %d | commit: %v",
		len(files), cfg.MaxImportRows, cfg.MaxConcurrency, cfg.Commit)

	slugSvc := services.NewSlugService()

	var pgWriter *storage.PostgresWriter
	if cfg.Commit {
		var err error
		pgWriter, err = storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pgWriter.Close()

		slugs, err := pgWriter.FetchSlugs()
		if err != nil {
			logger.Error("Failed to preload existing slugs: %v", err)
			os.Exit(1)
		}
		slugSvc.Preload(slugs)
		logger.Info("Preloaded %d existing slugs from PostgreSQL", len(slugs))
	}

	// Each preview run gets its own slug session so repeated runs over the
	// same file produce the same slugs; only the commit below claims slugs
	// for good, via the database's uniqueness constraint.
	importSvc := importer.NewService(func() importer.SlugGenerator { return slugSvc.Session() }, logger)
	if cfg.PreviewSampleSize > 0 {
		importSvc.SampleSize = cfg.PreviewSampleSize
	}

	var (
		mu        sync.Mutex
		toCommit  []*models.Property
		hadErrors bool
	)

	pool := utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RateLimitMs)
	for _, path := range files {
		path := path
		pool.Submit(func() {
			properties, ok := previewFile(path, cfg, importSvc, logger)
			mu.Lock()
			defer mu.Unlock()
			if !ok {
				hadErrors = true
				return
			}
			toCommit = append(toCommit, properties...)
		})
	}
	pool.Wait()

	if !cfg.Commit {
		logger.Info("Preview only — re-run with COMMIT=true to persist %d valid rows", len(toCommit))
		if hadErrors {
			os.Exit(1)
		}
		return
	}

	if len(toCommit) == 0 {
		logger.Error("No valid rows to commit. Exiting.")
		os.Exit(1)
	}

	batchID := uuid.New()
	logger.Info("Committing batch %s (%d properties)", batchID, len(toCommit))

	retry := utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Logger:      logger,
	}
	var results []storage.InsertResult
	err := retry.Do("commit properties", func() error {
		var writeErr error
		results, writeErr = pgWriter.Write(batchID, toCommit)
		return writeErr
	})
	if err != nil {
		logger.Error("Commit failed: %v", err)
		os.Exit(1)
	}

	inserted := 0
	for _, r := range results {
		if r.Inserted {
			inserted++
		} else {
			logger.Warn("Skipped %q: already persisted", r.Slug)
		}
	}
	logger.Info("Committed %d/%d properties to PostgreSQL", inserted, len(results))

	summarySvc := services.NewSummaryService(logger)
	summarySvc.Print(summarySvc.Generate(toCommit))

	if hadErrors {
		os.Exit(1)
	}
}

// previewFile runs the import pipeline over one file, writes its CSV report
// and returns the valid properties. ok=false when the file was unreadable or
// exceeded the row cap.
func previewFile(path string, cfg *config.Config, svc *importer.Service, logger *utils.Logger) ([]*models.Property, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read %s: %v", path, err)
		return nil, false
	}

	preview, err := svc.GeneratePreview(data, nil)
	if err != nil {
		logger.Error("Could not parse %s as a spreadsheet: %v", path, err)
		return nil, false
	}

	if preview.TotalRows > cfg.MaxImportRows {
		logger.Error("%s has %d rows, above the %d-row limit — split the file and retry",
			path, preview.TotalRows, cfg.MaxImportRows)
		return nil, false
	}

	if len(preview.UnmappedHeaders) > 0 {
		logger.Warn("%s: unmapped headers: %s", path, strings.Join(preview.UnmappedHeaders, ", "))
	}
	for i := range preview.Rows {
		if len(preview.Rows[i].Errors) > 0 {
			logger.Debug("%s row %d: %s", path, preview.Rows[i].RowNumber,
				strings.Join(preview.Rows[i].Errors, "; "))
		}
	}

	if err := writeReport(path, cfg.ReportOutputDir, preview, logger); err != nil {
		logger.Error("Failed to write report for %s: %v", path, err)
		return nil, false
	}

	return preview.ValidProperties(), true
}

func writeReport(sourcePath, outputDir string, preview *models.ImportPreview, logger *utils.Logger) error {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	reportPath := filepath.Join(outputDir, base+"_report.csv")

	w, err := storage.NewCSVWriter(reportPath)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WriteRows(preview.Rows); err != nil {
		return err
	}
	logger.Info("Report for %s saved to %s", sourcePath, reportPath)
	return nil
}
