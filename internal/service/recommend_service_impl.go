package service

import (
	"context"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/engine"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

type recommendService struct {
	activities repository.ActivityRepo
	loader     *snapshotLoader
	scorer     engine.Scorer
}

// NewRecommendService builds the explore-feed ranking use case.
func NewRecommendService(
	activities repository.ActivityRepo,
	profiles repository.StudentProfileRepo,
	attractors repository.AttractorRepo,
	tun Tunables,
) app.RecommendUseCase {
	return &recommendService{
		activities: activities,
		loader:     &snapshotLoader{profiles: profiles, attractors: attractors},
		scorer:     tun.scorer(),
	}
}

func (s *recommendService) Rank(ctx context.Context, req app.RecommendRequest) (*app.RecommendResponse, error) {
	now := resolveNow(req.Now)
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []domain.Activity
	if req.UpcomingOnly {
		list, err := s.activities.ListUpcoming(ctx, now)
		if err != nil {
			return nil, err
		}
		candidates = derefActivities(list)
	} else {
		list, err := s.activities.List(ctx)
		if err != nil {
			return nil, err
		}
		candidates = derefActivities(list)
	}

	resp := &app.RecommendResponse{
		GeneratedAt:          now,
		CandidatesConsidered: len(candidates),
	}
	if len(candidates) == 0 {
		resp.EmptyMessage = app.RelaxConstraintsMessage
		return resp, nil
	}

	scored := s.scorer.RankActivities(candidates, snap.Profile, snap.Attractor)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	for _, sa := range scored {
		resp.Items = append(resp.Items, app.RankedActivity{
			Activity: sa.Activity,
			Score:    sa.Score,
			Reasons:  sa.Reasons,
		})
	}
	return resp, nil
}
