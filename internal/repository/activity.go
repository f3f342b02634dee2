package repository

import (
	"context"
	"fmt"

	"mining-map-api/internal/models"
)

// CreateActivity stores an audit entry; the timestamp is set by the database
// and written back into a.
func (r *Repository) CreateActivity(ctx context.Context, a *models.ActivityLog) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO activity_logs (id, user_id, username, action, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING timestamp
	`, a.ID, a.UserID, a.Username, a.Action, a.Details).Scan(&a.Timestamp)
	if err != nil {
		return fmt.Errorf("repository: failed to insert activity: %w", err)
	}
	return nil
}

// ListActivity returns the newest limit entries.
func (r *Repository) ListActivity(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(user_id, ''), COALESCE(username, ''), COALESCE(action, ''), details, timestamp
		FROM activity_logs
		ORDER BY timestamp DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query activity: %w", err)
	}
	defer rows.Close()

	logs := []models.ActivityLog{}
	for rows.Next() {
		var a models.ActivityLog
		if err := rows.Scan(&a.ID, &a.UserID, &a.Username, &a.Action, &a.Details, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("repository: failed to scan activity: %w", err)
		}
		logs = append(logs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating activity: %w", err)
	}

	return logs, nil
}
