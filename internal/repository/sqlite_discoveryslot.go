package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

const slotColumns = `id, organizer_id, organizer_type, name, location, description,
	tags, available_times, created_at`

// SQLiteDiscoverySlotRepo implements DiscoverySlotRepo using a SQLite database.
type SQLiteDiscoverySlotRepo struct {
	db db.DBTX
}

// NewSQLiteDiscoverySlotRepo creates a new SQLiteDiscoverySlotRepo.
func NewSQLiteDiscoverySlotRepo(conn db.DBTX) *SQLiteDiscoverySlotRepo {
	return &SQLiteDiscoverySlotRepo{db: conn}
}

func (r *SQLiteDiscoverySlotRepo) Create(ctx context.Context, d *domain.DiscoverySlotOffer) error {
	tags, err := marshalStringList(d.Tags)
	if err != nil {
		return err
	}
	times, err := marshalTimeList(d.AvailableTimes)
	if err != nil {
		return err
	}
	query := `INSERT INTO discovery_slots (` + slotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		d.ID,
		d.OrganizerID,
		string(d.OrganizerType),
		d.Name,
		d.Location,
		d.Description,
		tags,
		times,
		d.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting discovery slot: %w", err)
	}
	return nil
}

func (r *SQLiteDiscoverySlotRepo) GetByID(ctx context.Context, id string) (*domain.DiscoverySlotOffer, error) {
	query := `SELECT ` + slotColumns + ` FROM discovery_slots WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	d, err := scanSlot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("discovery slot: %w", ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDiscoverySlotRepo) List(ctx context.Context) ([]*domain.DiscoverySlotOffer, error) {
	query := `SELECT ` + slotColumns + ` FROM discovery_slots ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing discovery slots: %w", err)
	}
	defer rows.Close()

	var slots []*domain.DiscoverySlotOffer
	for rows.Next() {
		d, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating discovery slots: %w", err)
	}
	return slots, nil
}

func (r *SQLiteDiscoverySlotRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM discovery_slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting discovery slot: %w", err)
	}
	return nil
}

func scanSlot(row scanner) (*domain.DiscoverySlotOffer, error) {
	var d domain.DiscoverySlotOffer
	var orgTypeStr, tagsStr, timesStr, createdStr string

	err := row.Scan(
		&d.ID,
		&d.OrganizerID,
		&orgTypeStr,
		&d.Name,
		&d.Location,
		&d.Description,
		&tagsStr,
		&timesStr,
		&createdStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning discovery slot: %w", err)
	}

	d.OrganizerType = domain.OrganizerType(orgTypeStr)
	if d.Tags, err = unmarshalStringList(tagsStr); err != nil {
		return nil, err
	}
	if d.AvailableTimes, err = unmarshalTimeList(timesStr); err != nil {
		return nil, err
	}
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &d, nil
}
