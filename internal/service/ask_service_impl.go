package service

import (
	"context"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/engine"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/intent"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

// defaultChatLimit caps chat matches when neither the request nor the
// configuration names a limit.
const defaultChatLimit = 3

type askService struct {
	activities repository.ActivityRepo
	loader     *snapshotLoader
	matcher    intent.Matcher
	scorer     engine.Scorer
	limit      int
}

// NewAskService builds the conversational query use case.
func NewAskService(
	activities repository.ActivityRepo,
	profiles repository.StudentProfileRepo,
	attractors repository.AttractorRepo,
	tun Tunables,
) app.AskUseCase {
	limit := tun.ChatLimit
	if limit <= 0 {
		limit = defaultChatLimit
	}
	return &askService{
		activities: activities,
		loader:     &snapshotLoader{profiles: profiles, attractors: attractors},
		matcher:    intent.Matcher{BudgetMin: tun.ChatBudgetMin},
		scorer:     tun.scorer(),
		limit:      limit,
	}
}

func (s *askService) Ask(ctx context.Context, req app.AskRequest) (*app.AskResponse, error) {
	now := resolveNow(req.Now)
	limit := req.Limit
	if limit <= 0 {
		limit = s.limit
	}

	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.activities.ListUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	candidates := derefActivities(list)

	// Novelty in chat is measured against the student's own department
	// only; the visit-history set stays the scoring baseline below.
	matched, filter := s.matcher.Match(req.Query, snap.Profile, candidates, snap.ownDepartmentSet(), limit)

	resp := &app.AskResponse{Explanation: filter.Explanation()}
	if len(matched) == 0 {
		resp.EmptyMessage = intent.NoMatchGuidance
		return resp, nil
	}

	// Matches keep the intent ordering; scoring only supplies the
	// per-card reasons.
	for _, a := range matched {
		sa := s.scorer.ScoreActivity(a, snap.Profile, snap.Attractor)
		resp.Matches = append(resp.Matches, app.RankedActivity{
			Activity: sa.Activity,
			Score:    sa.Score,
			Reasons:  sa.Reasons,
		})
	}
	return resp, nil
}
