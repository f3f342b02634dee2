package repository

import (
	"context"
	"fmt"

	"mining-map-api/internal/models"
)

// CreateFile records an uploaded dossier file.
func (r *Repository) CreateFile(ctx context.Context, f models.LicenseFile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO license_files (id, license_id, filename, file_path)
		VALUES ($1, $2, $3, $4)
	`, f.ID, f.LicenseID, f.Filename, f.URL)
	if err != nil {
		return fmt.Errorf("repository: failed to insert file: %w", err)
	}
	return nil
}

// ListFiles returns the files of a license, newest first.
func (r *Repository) ListFiles(ctx context.Context, licenseID string) ([]models.LicenseFile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, license_id, filename, file_path, upload_date
		FROM license_files
		WHERE license_id = $1
		ORDER BY upload_date DESC
	`, licenseID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query files: %w", err)
	}
	defer rows.Close()

	files := []models.LicenseFile{}
	for rows.Next() {
		var f models.LicenseFile
		if err := rows.Scan(&f.ID, &f.LicenseID, &f.Filename, &f.URL, &f.Date); err != nil {
			return nil, fmt.Errorf("repository: failed to scan file: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating files: %w", err)
	}

	return files, nil
}

// LicenseFileURLs returns the stored URLs of every file attached to ids.
func (r *Repository) LicenseFileURLs(ctx context.Context, ids []string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT file_path FROM license_files WHERE license_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query file paths: %w", err)
	}
	defer rows.Close()

	urls := []string{}
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("repository: failed to scan file path: %w", err)
		}
		urls = append(urls, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating file paths: %w", err)
	}

	return urls, nil
}

// GetFile returns a single file record.
func (r *Repository) GetFile(ctx context.Context, id string) (*models.LicenseFile, error) {
	var f models.LicenseFile
	err := r.db.QueryRow(ctx, `
		SELECT id, license_id, filename, file_path, upload_date
		FROM license_files
		WHERE id = $1
	`, id).Scan(&f.ID, &f.LicenseID, &f.Filename, &f.URL, &f.Date)
	if err != nil {
		return nil, notFoundOr(err, "failed to get file")
	}
	return &f, nil
}

// DeleteFile removes a file record. Deleting an unknown id is not an error.
func (r *Repository) DeleteFile(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM license_files WHERE id = $1`, id); err != nil {
		return fmt.Errorf("repository: failed to delete file: %w", err)
	}
	return nil
}
