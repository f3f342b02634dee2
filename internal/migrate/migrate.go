// Package migrate copies staged license records into the server database.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"mining-map-api/internal/models"
	"mining-map-api/internal/repository"

	"github.com/araddon/dateparse"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const insertLicense = `
	INSERT INTO licenses (
		id, company, country, region, commodity, license_type,
		status, lat, lng, date_issued
	) VALUES (
		:id, :company, :country, :region, :commodity, :license_type,
		:status, :lat, :lng, :date_issued
	)
	ON CONFLICT (id) DO NOTHING
`

// Source yields the records to migrate.
type Source interface {
	All(ctx context.Context) ([]models.LicenseRecord, error)
}

// Execer runs one named statement. *sqlx.DB satisfies it.
type Execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Result counts what happened to each source row.
type Result struct {
	Read     int
	Inserted int
	Existing int
	Failed   int
}

type licenseRow struct {
	ID          string     `db:"id"`
	Company     string     `db:"company"`
	Country     string     `db:"country"`
	Region      string     `db:"region"`
	Commodity   string     `db:"commodity"`
	LicenseType string     `db:"license_type"`
	Status      string     `db:"status"`
	Lat         *float64   `db:"lat"`
	Lng         *float64   `db:"lng"`
	DateIssued  *time.Time `db:"date_issued"`
}

// Open connects to PostgreSQL through lib/pq and makes sure the server
// schema exists.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("migrate: connect: %w", err)
	}
	if _, err := db.ExecContext(ctx, repository.Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: apply schema: %w", err)
	}
	return db, nil
}

// Run inserts every source record into dst. Rows are independent: a failing
// row is logged and skipped while the rows before and after it still land.
func Run(ctx context.Context, src Source, dst Execer) (Result, error) {
	records, err := src.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("migrate: read source: %w", err)
	}

	res := Result{Read: len(records)}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		out, err := dst.NamedExecContext(ctx, insertLicense, toRow(rec))
		if err != nil {
			res.Failed++
			log.Warn().Err(err).Str("id", rec.ID).Msg("failed to migrate license")
			continue
		}

		if n, err := out.RowsAffected(); err == nil && n == 0 {
			res.Existing++
			continue
		}
		res.Inserted++
	}

	return res, nil
}

func toRow(rec models.LicenseRecord) licenseRow {
	return licenseRow{
		ID:          rec.ID,
		Company:     rec.Company,
		Country:     rec.Country,
		Region:      rec.Region,
		Commodity:   rec.Commodity,
		LicenseType: rec.LicenseType,
		Status:      rec.Status,
		Lat:         rec.Lat,
		Lng:         rec.Lng,
		DateIssued:  ParseDate(rec.Date),
	}
}

// ParseDate reads the free-form issue date of a spreadsheet. Blank,
// placeholder and unparseable values yield nil.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "unknown") || strings.EqualFold(raw, "nan") {
		return nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}
