package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

const activityColumns = `id, title, department, category, location, start_time,
	duration_min, is_free, attendee_departments, discovery_slot, created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	attendees, err := marshalStringList(a.AttendeeDepartments)
	if err != nil {
		return err
	}
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		a.Department,
		string(a.Category),
		a.Location,
		a.StartTime.UTC().Format(time.RFC3339),
		a.DurationMin,
		boolToInt(a.IsFree),
		attendees,
		boolToInt(a.DiscoverySlot),
		a.CreatedAt.UTC().Format(time.RFC3339),
		a.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	a, err := scanActivity(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY start_time, id`
	return r.queryActivities(ctx, query)
}

func (r *SQLiteActivityRepo) ListUpcoming(ctx context.Context, after time.Time) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE start_time >= ? ORDER BY start_time, id`
	return r.queryActivities(ctx, query, after.UTC().Format(time.RFC3339))
}

func (r *SQLiteActivityRepo) queryActivities(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	attendees, err := marshalStringList(a.AttendeeDepartments)
	if err != nil {
		return err
	}
	query := `UPDATE activities SET title = ?, department = ?, category = ?, location = ?,
		start_time = ?, duration_min = ?, is_free = ?, attendee_departments = ?,
		discovery_slot = ?, updated_at = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		a.Title,
		a.Department,
		string(a.Category),
		a.Location,
		a.StartTime.UTC().Format(time.RFC3339),
		a.DurationMin,
		boolToInt(a.IsFree),
		attendees,
		boolToInt(a.DiscoverySlot),
		nowUTC(),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (*domain.Activity, error) {
	var a domain.Activity
	var categoryStr, startStr, attendeesStr, createdStr, updatedStr string
	var isFree, discovery int

	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Department,
		&categoryStr,
		&a.Location,
		&startStr,
		&a.DurationMin,
		&isFree,
		&attendeesStr,
		&discovery,
		&createdStr,
		&updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	a.Category = domain.NormalizeCategory(categoryStr)
	a.IsFree = intToBool(isFree)
	a.DiscoverySlot = intToBool(discovery)

	if a.StartTime, err = time.Parse(time.RFC3339, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	if a.AttendeeDepartments, err = unmarshalStringList(attendeesStr); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &a, nil
}
