package service

import (
	"context"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

type profileService struct {
	profiles repository.StudentProfileRepo
}

// NewProfileService builds the profile use case over the singleton row.
func NewProfileService(profiles repository.StudentProfileRepo) app.ProfileUseCase {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.StudentProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Save(ctx context.Context, p *domain.StudentProfile) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.profiles.Upsert(ctx, p)
}
