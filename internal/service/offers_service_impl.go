package service

import (
	"context"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/engine"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

type offerService struct {
	slots  repository.DiscoverySlotRepo
	loader *snapshotLoader
}

// NewOfferService builds the discovery-slot ranking use case.
func NewOfferService(
	slots repository.DiscoverySlotRepo,
	profiles repository.StudentProfileRepo,
	attractors repository.AttractorRepo,
) app.OffersUseCase {
	return &offerService{
		slots:  slots,
		loader: &snapshotLoader{profiles: profiles, attractors: attractors},
	}
}

func (s *offerService) RankOffers(ctx context.Context, limit int) (*app.OffersResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.slots.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &app.OffersResponse{GeneratedAt: time.Now().UTC()}
	if len(list) == 0 {
		resp.EmptyMessage = "No open invitations right now. Check back after the next feed import."
		return resp, nil
	}

	offers := make([]domain.DiscoverySlotOffer, len(list))
	for i, o := range list {
		offers[i] = *o
	}

	ranked := engine.RankOffers(offers, snap.Profile)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for _, so := range ranked {
		resp.Offers = append(resp.Offers, app.RankedOffer{
			Offer:   so.Offer,
			Score:   so.Score,
			Reasons: so.Reasons,
		})
	}
	return resp, nil
}
