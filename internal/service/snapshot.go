package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

// snapshot is one consistent read of the student context taken before an
// engine pass. A missing profile or attractor is a normal first-run state,
// not an error; both come back nil.
type snapshot struct {
	Profile   *domain.StudentProfile
	Attractor *domain.AttractorState
}

type snapshotLoader struct {
	profiles   repository.StudentProfileRepo
	attractors repository.AttractorRepo
}

func (l *snapshotLoader) Load(ctx context.Context) (*snapshot, error) {
	var snap snapshot

	profile, err := l.profiles.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	snap.Profile = profile

	attractor, err := l.attractors.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	snap.Attractor = attractor

	return &snap, nil
}

// visitedSet derives the scoring novelty baseline: the attractor's visited
// departments when present, otherwise the student's own department.
func (s *snapshot) visitedSet() map[string]bool {
	if s.Attractor != nil && len(s.Attractor.DepartmentsVisited) > 0 {
		return s.Attractor.VisitedSet()
	}
	if s.Profile != nil && s.Profile.Department != "" {
		return map[string]bool{strings.ToLower(s.Profile.Department): true}
	}
	return nil
}

// ownDepartmentSet is the chat novelty baseline: only the student's own
// department counts as familiar, so a query for "something new" can still
// resurface departments already in the visit history.
func (s *snapshot) ownDepartmentSet() map[string]bool {
	if s.Profile != nil && s.Profile.Department != "" {
		return map[string]bool{strings.ToLower(s.Profile.Department): true}
	}
	return nil
}

func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return time.Now().UTC()
}

func derefActivities(list []*domain.Activity) []domain.Activity {
	out := make([]domain.Activity, len(list))
	for i, a := range list {
		out[i] = *a
	}
	return out
}
