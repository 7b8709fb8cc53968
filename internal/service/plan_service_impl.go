package service

import (
	"context"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/campus"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/engine"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

type planService struct {
	activities      repository.ActivityRepo
	loader          *snapshotLoader
	graph           *campus.Graph
	scorer          engine.Scorer
	costUnit        int
	defaultStrategy string
}

// NewPlanService builds the itinerary planning use case.
func NewPlanService(
	activities repository.ActivityRepo,
	profiles repository.StudentProfileRepo,
	attractors repository.AttractorRepo,
	graph *campus.Graph,
	tun Tunables,
) app.PlanUseCase {
	return &planService{
		activities:      activities,
		loader:          &snapshotLoader{profiles: profiles, attractors: attractors},
		graph:           graph,
		scorer:          tun.scorer(),
		costUnit:        tun.costUnit(),
		defaultStrategy: tun.Strategy,
	}
}

func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	now := resolveNow(req.Now)

	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.activities.ListUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	candidates := derefActivities(list)

	profile := effectivePlanProfile(snap.Profile, req)
	scored := s.scorer.RankActivities(candidates, profile, snap.Attractor)

	cons := engine.Constraints{
		MaxTotalMin:   req.MaxTotalMin,
		FreeOnly:      req.FreeOnly || (profile != nil && profile.FreeOnly),
		Accessibility: mergeAccessibility(profile, req.Accessibility),
		StartLocation: req.StartLocation,
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = s.defaultStrategy
	}
	planner := &engine.Planner{
		Graph:    s.graph,
		CostUnit: s.costUnit,
		Strategy: engine.StrategyByName(strategy),
	}
	itinerary := planner.Plan(scored, cons)

	resp := &app.PlanResponse{
		GeneratedAt:          now,
		TotalEventMin:        itinerary.TotalEventMin,
		TotalWalkMin:         itinerary.TotalWalkMin,
		EstimatedCost:        itinerary.EstimatedCost,
		CandidatesConsidered: itinerary.CandidatesConsidered,
		Exclusions:           itinerary.Exclusions,
	}
	for _, stop := range itinerary.Stops {
		resp.Stops = append(resp.Stops, app.ItineraryStop{
			Activity:   stop.Scored.Activity,
			Score:      stop.Scored.Score,
			Reasons:    stop.Scored.Reasons,
			WalkMin:    stop.WalkMin,
			Accessible: stop.Accessible,
			Zone:       stop.Zone,
		})
	}
	if len(resp.Stops) == 0 {
		resp.EmptyMessage = app.RelaxConstraintsMessage
	}
	return resp, nil
}

// effectivePlanProfile overlays request-level interests on the stored
// profile so a one-off plan can bias scoring without mutating state.
func effectivePlanProfile(profile *domain.StudentProfile, req app.PlanRequest) *domain.StudentProfile {
	if len(req.Interests) == 0 {
		return profile
	}
	if profile == nil {
		return &domain.StudentProfile{Interests: req.Interests}
	}
	copied := *profile
	copied.Interests = req.Interests
	return &copied
}

func mergeAccessibility(profile *domain.StudentProfile, extra []domain.AccessibilityTag) []domain.AccessibilityTag {
	if profile == nil {
		return extra
	}
	merged := append([]domain.AccessibilityTag{}, profile.Accessibility...)
	for _, tag := range extra {
		if !profile.HasAccessibility(tag) {
			merged = append(merged, tag)
		}
	}
	return merged
}
