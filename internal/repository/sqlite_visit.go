package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

const visitColumns = `id, activity_id, attended_at, outcome, new_connections, note, created_at`

// SQLiteVisitRepo implements VisitRepo using a SQLite database.
type SQLiteVisitRepo struct {
	db db.DBTX
}

// NewSQLiteVisitRepo creates a new SQLiteVisitRepo.
func NewSQLiteVisitRepo(conn db.DBTX) *SQLiteVisitRepo {
	return &SQLiteVisitRepo{db: conn}
}

func (r *SQLiteVisitRepo) Create(ctx context.Context, v *domain.VisitLog) error {
	query := `INSERT INTO visit_logs (` + visitColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.ActivityID,
		v.AttendedAt.UTC().Format(time.RFC3339),
		string(v.Outcome),
		v.NewConnections,
		v.Note,
		v.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting visit log: %w", err)
	}
	return nil
}

func (r *SQLiteVisitRepo) GetByID(ctx context.Context, id string) (*domain.VisitLog, error) {
	query := `SELECT ` + visitColumns + ` FROM visit_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	v, err := scanVisit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("visit log: %w", ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (r *SQLiteVisitRepo) List(ctx context.Context) ([]*domain.VisitLog, error) {
	query := `SELECT ` + visitColumns + ` FROM visit_logs ORDER BY attended_at DESC, id`
	return r.queryVisits(ctx, query)
}

func (r *SQLiteVisitRepo) ListRecent(ctx context.Context, days int) ([]*domain.VisitLog, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	query := `SELECT ` + visitColumns + ` FROM visit_logs WHERE attended_at >= ?
		ORDER BY attended_at DESC, id`
	return r.queryVisits(ctx, query, cutoff)
}

func (r *SQLiteVisitRepo) queryVisits(ctx context.Context, query string, args ...any) ([]*domain.VisitLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing visit logs: %w", err)
	}
	defer rows.Close()

	var visits []*domain.VisitLog
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating visit logs: %w", err)
	}
	return visits, nil
}

func scanVisit(row scanner) (*domain.VisitLog, error) {
	var v domain.VisitLog
	var outcomeStr, attendedStr, createdStr string

	err := row.Scan(
		&v.ID,
		&v.ActivityID,
		&attendedStr,
		&outcomeStr,
		&v.NewConnections,
		&v.Note,
		&createdStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning visit log: %w", err)
	}

	v.Outcome = domain.VisitOutcome(outcomeStr)
	if v.AttendedAt, err = time.Parse(time.RFC3339, attendedStr); err != nil {
		return nil, fmt.Errorf("parsing attended_at: %w", err)
	}
	if v.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &v, nil
}
