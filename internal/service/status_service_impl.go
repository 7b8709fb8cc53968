package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

// maxUnexploredShown caps the dashboard's nudge list.
const maxUnexploredShown = 5

type statusService struct {
	loader *snapshotLoader
}

// NewStatusService builds the bubble dashboard use case.
func NewStatusService(
	profiles repository.StudentProfileRepo,
	attractors repository.AttractorRepo,
) app.StatusUseCase {
	return &statusService{
		loader: &snapshotLoader{profiles: profiles, attractors: attractors},
	}
}

func (s *statusService) Status(ctx context.Context) (*app.StatusResponse, error) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	attractor := snap.Attractor
	if attractor == nil {
		attractor = &domain.AttractorState{StudentID: "default"}
	}

	resp := &app.StatusResponse{
		GeneratedAt:      time.Now().UTC(),
		BubblePct:        attractor.BubblePercentage(),
		DepartmentsRatio: fmt.Sprintf("%d of %d", len(attractor.DepartmentsVisited), domain.TotalDepartments),
		CanteenVariety:   ratioPct(len(attractor.CanteenCountersUsed), domain.TotalCanteenCounters),
		EventDiversity:   ratioPct(len(attractor.CategoriesAttended), domain.TotalEventCategories),
		Connections:      attractor.ConnectionCount,
	}
	if snap.Profile != nil {
		resp.DriftScore = snap.Profile.DriftScore
		resp.DriftStreak = snap.Profile.DriftStreak
	}

	for _, dept := range attractor.UnexploredDepartments(maxUnexploredShown) {
		resp.Unexplored = append(resp.Unexplored, app.UnexploredArea{
			Name:  dept,
			Nudge: fmt.Sprintf("You haven't been to %s yet. One event there would move your bubble.", dept),
		})
	}
	return resp, nil
}

func ratioPct(have, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(have) / float64(total) * 100
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*10) / 10
}
