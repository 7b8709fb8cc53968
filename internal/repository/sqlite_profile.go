package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// profileRowID is the fixed key of the singleton profile row. The CLI
// manages one local student, so the repo exposes Get/Upsert without IDs.
const profileRowID = "default"

// SQLiteStudentProfileRepo implements StudentProfileRepo using a SQLite database.
type SQLiteStudentProfileRepo struct {
	db db.DBTX
}

// NewSQLiteStudentProfileRepo creates a new SQLiteStudentProfileRepo.
func NewSQLiteStudentProfileRepo(conn db.DBTX) *SQLiteStudentProfileRepo {
	return &SQLiteStudentProfileRepo{db: conn}
}

func (r *SQLiteStudentProfileRepo) Get(ctx context.Context) (*domain.StudentProfile, error) {
	query := `SELECT id, name, department, year, skills, interests, time_budget_min,
		free_only, accessibility, drift_score, drift_streak, created_at, updated_at
		FROM student_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, profileRowID)

	var p domain.StudentProfile
	var skillsStr, interestsStr, accessStr, createdStr, updatedStr string
	var budget sql.NullInt64
	var freeOnly int

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Department,
		&p.Year,
		&skillsStr,
		&interestsStr,
		&budget,
		&freeOnly,
		&accessStr,
		&p.DriftScore,
		&p.DriftStreak,
		&createdStr,
		&updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student profile: %w", err)
	}

	if budget.Valid {
		v := int(budget.Int64)
		p.TimeBudgetMin = &v
	}
	p.FreeOnly = intToBool(freeOnly)

	if p.Skills, err = unmarshalStringList(skillsStr); err != nil {
		return nil, err
	}
	if p.Interests, err = unmarshalStringList(interestsStr); err != nil {
		return nil, err
	}
	access, err := unmarshalStringList(accessStr)
	if err != nil {
		return nil, err
	}
	for _, tag := range access {
		p.Accessibility = append(p.Accessibility, domain.AccessibilityTag(tag))
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}

func (r *SQLiteStudentProfileRepo) Upsert(ctx context.Context, p *domain.StudentProfile) error {
	skills, err := marshalStringList(p.Skills)
	if err != nil {
		return err
	}
	interests, err := marshalStringList(p.Interests)
	if err != nil {
		return err
	}
	access := make([]string, len(p.Accessibility))
	for i, tag := range p.Accessibility {
		access[i] = string(tag)
	}
	accessStr, err := marshalStringList(access)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO student_profile (id, name, department, year, skills,
		interests, time_budget_min, free_only, accessibility, drift_score, drift_streak,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		profileRowID,
		p.Name,
		p.Department,
		p.Year,
		skills,
		interests,
		nullableIntToValue(p.TimeBudgetMin),
		boolToInt(p.FreeOnly),
		accessStr,
		p.DriftScore,
		p.DriftStreak,
		p.CreatedAt.UTC().Format(time.RFC3339),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting student profile: %w", err)
	}
	return nil
}
