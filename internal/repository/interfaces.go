package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist. Callers
// match it with errors.Is.
var ErrNotFound = errors.New("not found")

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

type DiscoverySlotRepo interface {
	Create(ctx context.Context, d *domain.DiscoverySlotOffer) error
	GetByID(ctx context.Context, id string) (*domain.DiscoverySlotOffer, error)
	List(ctx context.Context) ([]*domain.DiscoverySlotOffer, error)
	Delete(ctx context.Context, id string) error
}

// StudentProfileRepo manages the single local profile row.
type StudentProfileRepo interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	Upsert(ctx context.Context, p *domain.StudentProfile) error
}

// AttractorRepo manages the single attractor-state row for the local student.
type AttractorRepo interface {
	Get(ctx context.Context) (*domain.AttractorState, error)
	Upsert(ctx context.Context, a *domain.AttractorState) error
}

type VisitRepo interface {
	Create(ctx context.Context, v *domain.VisitLog) error
	GetByID(ctx context.Context, id string) (*domain.VisitLog, error)
	List(ctx context.Context) ([]*domain.VisitLog, error)
	ListRecent(ctx context.Context, days int) ([]*domain.VisitLog, error)
}
