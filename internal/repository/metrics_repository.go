package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/journalup/journal-up/internal/model"
)

// MetricsRepo appends and reads rows of the append-only 'metrics' table.
// Range validation (1-10) lives in the service layer, not here.
type MetricsRepo struct{ DB *sql.DB }

func NewMetricsRepo(db *sql.DB) *MetricsRepo { return &MetricsRepo{DB: db} }

// Record appends a metric row and returns the stored record.
func (r *MetricsRepo) Record(ctx context.Context, userID string, metricType model.MetricType, value int, notes string) (model.Metric, error) {
	const q = `INSERT INTO metrics (user_id, type, value, notes) VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id, user_id, type, value, COALESCE(notes, ''), created_at`
	var m model.Metric
	err := r.DB.QueryRowContext(ctx, q, userID, metricType, value, notes).
		Scan(&m.ID, &m.UserID, &m.Type, &m.Value, &m.Notes, &m.CreatedAt)
	return m, err
}

// List returns the user's metrics ordered by creation time ascending,
// optionally restricted to the inclusive [start, end] window.
func (r *MetricsRepo) List(ctx context.Context, userID string, start, end *time.Time) ([]model.Metric, error) {
	const q = `SELECT id, user_id, type, value, COALESCE(notes, ''), created_at
		FROM metrics
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, q, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Metric, 0)
	for rows.Next() {
		var m model.Metric
		if err := rows.Scan(&m.ID, &m.UserID, &m.Type, &m.Value, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete removes a single metric row. Not part of the normal flow; kept
// for administrative cleanup.
func (r *MetricsRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM metrics WHERE id = $1`, id)
	return err
}
