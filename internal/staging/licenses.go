package staging

import (
	"context"
	"fmt"

	"mining-map-api/internal/commodity"
	"mining-map-api/internal/models"

	"github.com/rs/zerolog/log"
)

const selectRecords = `
	SELECT
		id,
		COALESCE(company, '') AS company,
		COALESCE(license_type, '') AS license_type,
		COALESCE(commodity, '') AS commodity,
		COALESCE(status, '') AS status,
		COALESCE(date_issued, '') AS date_issued,
		COALESCE(country, '') AS country,
		COALESCE(region, '') AS region,
		lat,
		lng,
		COALESCE(matched_location, '') AS matched_location
	FROM licenses
`

// LoadResult counts the outcome of Replace.
type LoadResult struct {
	Inserted int
	Failed   int
}

// Replace empties the licenses table and inserts records. A record that fails
// to insert is logged and counted; the rest are still committed.
func (db *DB) Replace(ctx context.Context, records []models.LicenseRecord) (LoadResult, error) {
	var res LoadResult

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("staging: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM licenses`); err != nil {
		return res, fmt.Errorf("staging: failed to clear licenses: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT OR REPLACE INTO licenses
			(id, company, license_type, commodity, status, date_issued, country, region, lat, lng, matched_location)
		VALUES
			(:id, :company, :license_type, :commodity, :status, :date_issued, :country, :region, :lat, :lng, :matched_location)
	`)
	if err != nil {
		return res, fmt.Errorf("staging: failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec); err != nil {
			log.Warn().Err(err).Str("id", rec.ID).Msg("failed to insert record")
			res.Failed++
			continue
		}
		res.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("staging: failed to commit: %w", err)
	}
	return res, nil
}

// All returns every staged record ordered by id.
func (db *DB) All(ctx context.Context) ([]models.LicenseRecord, error) {
	var records []models.LicenseRecord
	if err := db.SelectContext(ctx, &records, selectRecords+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("staging: failed to list records: %w", err)
	}
	return records, nil
}

// Sample returns up to n geocoded records.
func (db *DB) Sample(ctx context.Context, n int) ([]models.LicenseRecord, error) {
	var records []models.LicenseRecord
	q := selectRecords + ` WHERE lat IS NOT NULL ORDER BY rowid LIMIT ?`
	if err := db.SelectContext(ctx, &records, q, n); err != nil {
		return nil, fmt.Errorf("staging: failed to sample records: %w", err)
	}
	return records, nil
}

// Count returns the number of staged records.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM licenses`); err != nil {
		return 0, fmt.Errorf("staging: failed to count records: %w", err)
	}
	return n, nil
}

// NormalizeCommodities rewrites every commodity through commodity.Normalize
// and returns how many rows changed.
func (db *DB) NormalizeCommodities(ctx context.Context) (int, error) {
	var rows []struct {
		ID        string `db:"id"`
		Commodity string `db:"commodity"`
	}
	err := db.SelectContext(ctx, &rows, `SELECT id, commodity FROM licenses WHERE commodity IS NOT NULL AND commodity != ''`)
	if err != nil {
		return 0, fmt.Errorf("staging: failed to read commodities: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("staging: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updated := 0
	for _, row := range rows {
		clean := commodity.Normalize(row.Commodity)
		if clean == row.Commodity {
			continue
		}
		if _, err := tx.ExecContext(ctx, `UPDATE licenses SET commodity = ? WHERE id = ?`, clean, row.ID); err != nil {
			return 0, fmt.Errorf("staging: failed to update commodity of %s: %w", row.ID, err)
		}
		updated++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("staging: failed to commit: %w", err)
	}
	return updated, nil
}
