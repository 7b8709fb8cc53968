package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// SQLiteAttractorRepo implements AttractorRepo using a SQLite database.
// Like the profile, the attractor state is a singleton row keyed by the
// local student.
type SQLiteAttractorRepo struct {
	db db.DBTX
}

// NewSQLiteAttractorRepo creates a new SQLiteAttractorRepo.
func NewSQLiteAttractorRepo(conn db.DBTX) *SQLiteAttractorRepo {
	return &SQLiteAttractorRepo{db: conn}
}

func (r *SQLiteAttractorRepo) Get(ctx context.Context) (*domain.AttractorState, error) {
	query := `SELECT student_id, departments_visited, canteen_counters_used,
		categories_attended, content_domains, connection_count, last_updated
		FROM attractor_state WHERE student_id = ?`
	row := r.db.QueryRowContext(ctx, query, profileRowID)

	var a domain.AttractorState
	var deptsStr, countersStr, catsStr, domainsStr, updatedStr string

	err := row.Scan(
		&a.StudentID,
		&deptsStr,
		&countersStr,
		&catsStr,
		&domainsStr,
		&a.ConnectionCount,
		&updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("attractor state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning attractor state: %w", err)
	}

	if a.DepartmentsVisited, err = unmarshalStringList(deptsStr); err != nil {
		return nil, err
	}
	if a.CanteenCountersUsed, err = unmarshalStringList(countersStr); err != nil {
		return nil, err
	}
	if a.CategoriesAttended, err = unmarshalStringList(catsStr); err != nil {
		return nil, err
	}
	if a.ContentDomains, err = unmarshalStringList(domainsStr); err != nil {
		return nil, err
	}
	if a.LastUpdated, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing last_updated: %w", err)
	}
	return &a, nil
}

func (r *SQLiteAttractorRepo) Upsert(ctx context.Context, a *domain.AttractorState) error {
	depts, err := marshalStringList(a.DepartmentsVisited)
	if err != nil {
		return err
	}
	counters, err := marshalStringList(a.CanteenCountersUsed)
	if err != nil {
		return err
	}
	cats, err := marshalStringList(a.CategoriesAttended)
	if err != nil {
		return err
	}
	domains, err := marshalStringList(a.ContentDomains)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO attractor_state (student_id, departments_visited,
		canteen_counters_used, categories_attended, content_domains, connection_count, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		profileRowID,
		depts,
		counters,
		cats,
		domains,
		a.ConnectionCount,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting attractor state: %w", err)
	}
	return nil
}
