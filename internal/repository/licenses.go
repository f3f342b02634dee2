package repository

import (
	"context"
	"fmt"

	"mining-map-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const licenseColumns = `
	id,
	COALESCE(company, '') AS company,
	license_type,
	commodity,
	COALESCE(status, '') AS status,
	date_issued,
	COALESCE(country, '') AS country,
	region,
	lat,
	lng,
	phone_number,
	contact_person
`

func scanLicense(row pgx.Row) (models.License, error) {
	var l models.License
	err := row.Scan(
		&l.ID,
		&l.Company,
		&l.LicenseType,
		&l.Commodity,
		&l.Status,
		&l.Date,
		&l.Country,
		&l.Region,
		&l.Lat,
		&l.Lng,
		&l.PhoneNumber,
		&l.ContactPerson,
	)
	return l, err
}

// ListLicenses returns every license ordered by id.
func (r *Repository) ListLicenses(ctx context.Context) ([]models.License, error) {
	rows, err := r.db.Query(ctx, `SELECT `+licenseColumns+` FROM licenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query licenses: %w", err)
	}
	defer rows.Close()

	licenses := []models.License{}
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan license: %w", err)
		}
		licenses = append(licenses, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating licenses: %w", err)
	}

	return licenses, nil
}

// GetLicense returns a single license.
func (r *Repository) GetLicense(ctx context.Context, id string) (*models.License, error) {
	l, err := scanLicense(r.db.QueryRow(ctx, `SELECT `+licenseColumns+` FROM licenses WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "failed to get license")
	}
	return &l, nil
}

// LicenseExists reports whether id is a stored license.
func (r *Repository) LicenseExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM licenses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check license: %w", err)
	}
	return exists, nil
}

// CreateLicense inserts l as-is, including a nil date.
func (r *Repository) CreateLicense(ctx context.Context, l models.License) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO licenses
			(id, company, country, region, commodity, license_type, status, lat, lng, phone_number, contact_person, date_issued)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		l.ID, l.Company, l.Country, l.Region, l.Commodity, l.LicenseType, l.Status,
		l.Lat, l.Lng, l.PhoneNumber, l.ContactPerson, l.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("repository: failed to insert license: %w", err)
	}
	return nil
}

// InsertLicenses bulk-loads licenses with COPY and returns the row count.
func (r *Repository) InsertLicenses(ctx context.Context, licenses []models.License) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"licenses"},
		[]string{"id", "company", "country", "region", "commodity", "license_type", "status", "lat", "lng", "phone_number", "contact_person", "date_issued"},
		pgx.CopyFromSlice(len(licenses), func(i int) ([]interface{}, error) {
			l := licenses[i]
			return []interface{}{
				l.ID, l.Company, l.Country, l.Region, l.Commodity, l.LicenseType, l.Status,
				l.Lat, l.Lng, l.PhoneNumber, l.ContactPerson, l.Date,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy licenses: %w", err)
	}
	return n, nil
}

// DeleteLicense removes one license; its files cascade.
func (r *Repository) DeleteLicense(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM licenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete license: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLicenses removes every license in ids and returns how many existed.
func (r *Repository) DeleteLicenses(ctx context.Context, ids []string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM licenses WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to batch delete licenses: %w", err)
	}
	return tag.RowsAffected(), nil
}
