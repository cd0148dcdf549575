package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"property-importer/models"
)

// PostgresWriter persists canonical property records to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			id                    SERIAL PRIMARY KEY,
			slug                  TEXT          UNIQUE NOT NULL,
			title                 TEXT          NOT NULL,
			description           TEXT          NOT NULL DEFAULT '',
			property_type         VARCHAR(50)   NOT NULL,
			business_type         VARCHAR(50)   NOT NULL,
			property_status       VARCHAR(50)   NOT NULL,
			availability          VARCHAR(50)   NOT NULL,
			sale_price            NUMERIC(15,2) NOT NULL DEFAULT 0,
			rent_price            NUMERIC(15,2) NOT NULL DEFAULT 0,
			currency              VARCHAR(10)   NOT NULL DEFAULT 'COP',
			admin_fee             NUMERIC(15,2) NOT NULL DEFAULT 0,
			city                  TEXT          NOT NULL DEFAULT '',
			state_department      TEXT          NOT NULL DEFAULT '',
			zone                  TEXT          NOT NULL DEFAULT '',
			address               TEXT          NOT NULL DEFAULT '',
			locality              TEXT          NOT NULL DEFAULT '',
			built_area            NUMERIC(10,2),
			private_area          NUMERIC(10,2),
			land_area             NUMERIC(12,2),
			bedrooms              INT           NOT NULL DEFAULT 0,
			bathrooms             INT           NOT NULL DEFAULT 0,
			parking_spots         INT           NOT NULL DEFAULT 0,
			stratum               INT,
			year_built            INT,
			features              TEXT[]        NOT NULL DEFAULT '{}',
			images                TEXT[]        NOT NULL DEFAULT '{}',
			external_code         TEXT          NOT NULL DEFAULT '',
			owner_name            TEXT          NOT NULL DEFAULT '',
			owner_phone           TEXT          NOT NULL DEFAULT '',
			owner_email           TEXT          NOT NULL DEFAULT '',
			commission_percentage NUMERIC(6,2)  NOT NULL DEFAULT 0,
			commission_notes      TEXT          NOT NULL DEFAULT '',
			private_notes         TEXT          NOT NULL DEFAULT '',
			is_published          BOOLEAN       NOT NULL DEFAULT TRUE,
			is_featured           BOOLEAN       NOT NULL DEFAULT FALSE,
			import_batch_id       UUID          NOT NULL,
			created_at            TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_properties_city            ON properties(city);
		CREATE INDEX IF NOT EXISTS idx_properties_property_type   ON properties(property_type);
		CREATE INDEX IF NOT EXISTS idx_properties_sale_price      ON properties(sale_price);
		CREATE INDEX IF NOT EXISTS idx_properties_external_code   ON properties(external_code);
		CREATE INDEX IF NOT EXISTS idx_properties_import_batch_id ON properties(import_batch_id);
	`)
	return err
}

// Write inserts the given properties inside one transaction, tagging each row
// with the commit's batch ID, and reports a per-row result. A slug collision
// (property already imported earlier) is not an error: the row is skipped and
// reported as not inserted.
func (pw *PostgresWriter) Write(batchID uuid.UUID, properties []*models.Property) ([]InsertResult, error) {
	results := make([]InsertResult, 0, len(properties))
	if len(properties) == 0 {
		return results, nil
	}

	tx, err := pw.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO properties (
			slug, title, description, property_type, business_type,
			property_status, availability, sale_price, rent_price, currency,
			admin_fee, city, state_department, zone, address, locality,
			built_area, private_area, land_area, bedrooms, bathrooms,
			parking_spots, stratum, year_built, features, images,
			external_code, owner_name, owner_phone, owner_email,
			commission_percentage, commission_notes, private_notes,
			is_published, is_featured, import_batch_id
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
			$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36
		)
		ON CONFLICT (slug) DO NOTHING
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range properties {
		res, err := stmt.Exec(
			p.Slug, p.Title["es"], p.Description["es"], p.PropertyType,
			p.BusinessType, p.PropertyStatus, p.Availability, p.SalePrice,
			p.RentPrice, p.Currency, p.AdminFee, p.City, p.StateDepartment,
			p.Zone, p.Address, p.Locality, nullableFloat(p.BuiltArea),
			nullableFloat(p.PrivateArea), nullableFloat(p.LandArea),
			p.Bedrooms, p.Bathrooms, p.ParkingSpots, nullableInt(p.Stratum),
			nullableInt(p.YearBuilt), pq.Array(p.Features), pq.Array(p.Images),
			p.ExternalCode, p.OwnerName, p.OwnerPhone, p.OwnerEmail,
			p.CommissionPercentage, p.CommissionNotes, p.PrivateNotes,
			p.IsPublished, p.IsFeatured, batchID.String(),
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: insert %q: %w", p.Slug, err)
		}
		affected, _ := res.RowsAffected()
		results = append(results, InsertResult{Slug: p.Slug, Inserted: affected > 0})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("postgres: commit: %w", err)
	}
	return results, nil
}

// FetchSlugs returns every persisted slug — the slug service preloads these
// so new imports never collide with existing properties.
func (pw *PostgresWriter) FetchSlugs() ([]string, error) {
	rows, err := pw.db.Query(`SELECT slug FROM properties ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("postgres: scan slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

func nullableFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullableInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
