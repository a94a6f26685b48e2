package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/attention/internal/domain"
	"example.com/attention/internal/observability"
)

// Repository provides Postgres-backed persistence for activity and
// interruption records.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateActivity persists one activity record.
func (r *Repository) CreateActivity(ctx context.Context, activity domain.Activity) error {
	const stmt = `INSERT INTO activities (activity_id, user_id, category, start_time, end_time, note, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := r.pool.Exec(ctx, stmt,
		activity.ID,
		activity.UserID,
		activity.Category,
		activity.StartTime,
		activity.EndTime,
		nullIfEmpty(activity.Note),
		activity.CreatedAt,
	)
	if err != nil {
		return err
	}
	observability.RecordPersisted("activity", activity.CreatedAt)
	return nil
}

// CreateInterruption persists one interruption record.
func (r *Repository) CreateInterruption(ctx context.Context, interruption domain.Interruption) error {
	const stmt = `INSERT INTO interruptions (interruption_id, user_id, activity_id, time, end_time, duration_min, type, note, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err := r.pool.Exec(ctx, stmt,
		interruption.ID,
		interruption.UserID,
		interruption.ActivityID,
		interruption.Time,
		interruption.EndTime,
		interruption.DurationMin,
		interruption.Type,
		nullIfEmpty(interruption.Note),
		interruption.CreatedAt,
	)
	if err != nil {
		return err
	}
	observability.RecordPersisted("interruption", interruption.CreatedAt)
	return nil
}

// ListActivities returns activities for a user ordered by time, newest first,
// with keyset pagination over (start_time, activity_id).
func (r *Repository) ListActivities(ctx context.Context, userID string, cursor *domain.Cursor, limit int) ([]domain.Activity, *domain.Cursor, error) {
	args := []interface{}{userID, limit}
	query := `SELECT activity_id, user_id, category, start_time, end_time, note, created_at
        FROM activities WHERE user_id=$1`

	if cursor != nil {
		query += ` AND (start_time, activity_id) < ($3, $4)`
		args = append(args, cursor.StartTime, cursor.ID)
	}

	query += ` ORDER BY start_time DESC, activity_id DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	results := make([]domain.Activity, 0, limit)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, nil, err
		}
		results = append(results, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var nextCursor *domain.Cursor
	if len(results) == limit && limit > 0 {
		last := results[len(results)-1]
		nextCursor = &domain.Cursor{StartTime: last.StartTime, ID: last.ID}
	}

	observability.RecordsLoaded("activity", len(results))
	return results, nextCursor, nil
}

// ActivitiesInWindow returns the user's activities starting inside [from, to],
// oldest first, as the engine expects its snapshots.
func (r *Repository) ActivitiesInWindow(ctx context.Context, userID string, from, to time.Time) ([]domain.Activity, error) {
	const query = `SELECT activity_id, user_id, category, start_time, end_time, note, created_at
        FROM activities WHERE user_id=$1 AND start_time >= $2 AND start_time <= $3
        ORDER BY start_time ASC, activity_id ASC`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	observability.RecordsLoaded("activity", len(results))
	return results, nil
}

// InterruptionsInWindow returns the user's interruptions inside [from, to],
// oldest first.
func (r *Repository) InterruptionsInWindow(ctx context.Context, userID string, from, to time.Time) ([]domain.Interruption, error) {
	const query = `SELECT interruption_id, user_id, activity_id, time, end_time, duration_min, type, note, created_at
        FROM interruptions WHERE user_id=$1 AND time >= $2 AND time <= $3
        ORDER BY time ASC, interruption_id ASC`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Interruption
	for rows.Next() {
		var i domain.Interruption
		var note *string
		if err := rows.Scan(&i.ID, &i.UserID, &i.ActivityID, &i.Time, &i.EndTime, &i.DurationMin, &i.Type, &note, &i.CreatedAt); err != nil {
			return nil, err
		}
		if note != nil {
			i.Note = *note
		}
		results = append(results, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	observability.RecordsLoaded("interruption", len(results))
	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (domain.Activity, error) {
	var a domain.Activity
	var note *string
	if err := row.Scan(&a.ID, &a.UserID, &a.Category, &a.StartTime, &a.EndTime, &note, &a.CreatedAt); err != nil {
		return domain.Activity{}, err
	}
	if note != nil {
		a.Note = *note
	}
	return a, nil
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
