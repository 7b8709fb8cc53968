package app

import (
	"context"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

type RecommendUseCase interface {
	Rank(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
}

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type AskUseCase interface {
	Ask(ctx context.Context, req AskRequest) (*AskResponse, error)
}

type OffersUseCase interface {
	RankOffers(ctx context.Context, limit int) (*OffersResponse, error)
}

type StatusUseCase interface {
	Status(ctx context.Context) (*StatusResponse, error)
}

type LogVisitUseCase interface {
	LogVisit(ctx context.Context, req LogVisitRequest) (*LogVisitResponse, error)
}

type ProfileUseCase interface {
	Get(ctx context.Context) (*domain.StudentProfile, error)
	Save(ctx context.Context, p *domain.StudentProfile) error
}

type ActivityUseCase interface {
	List(ctx context.Context) ([]*domain.Activity, error)
	Add(ctx context.Context, a *domain.Activity) error
	ImportFeed(ctx context.Context, path string) (*ImportResult, error)
}

// ImportResult summarizes one activity-feed import.
type ImportResult struct {
	Imported int
	Skipped  int
	Warnings []string
}
