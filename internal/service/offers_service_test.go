package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/testutil"
)

func seedSlot(t *testing.T, repo repository.DiscoverySlotRepo, name string, tags ...string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.DiscoverySlotOffer{
		ID:            uuid.New().String(),
		OrganizerType: domain.OrganizerClub,
		Name:          name,
		Tags:          tags,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}))
}

func TestRankOffersPrefersTagOverlap(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	slots := repository.NewSQLiteDiscoverySlotRepo(database)
	profiles := repository.NewSQLiteStudentProfileRepo(database)

	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile(
		testutil.WithInterests("Theatre"))))
	seedSlot(t, slots, "Chess Corner", "strategy")
	seedSlot(t, slots, "Improv Open Hour", "theatre", "speaking")

	svc := NewOfferService(slots, profiles, repository.NewSQLiteAttractorRepo(database))
	resp, err := svc.RankOffers(ctx, 10)
	require.NoError(t, err)

	require.Len(t, resp.Offers, 2)
	assert.Equal(t, "Improv Open Hour", resp.Offers[0].Offer.Name)
	assert.Greater(t, resp.Offers[0].Score, resp.Offers[1].Score)

	codes := make([]app.ReasonCode, 0)
	for _, r := range resp.Offers[0].Reasons {
		codes = append(codes, r.Code)
	}
	assert.Contains(t, codes, app.ReasonTagOverlap)
}

func TestRankOffersEmptyIsGuidanceNotError(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewOfferService(
		repository.NewSQLiteDiscoverySlotRepo(database),
		repository.NewSQLiteStudentProfileRepo(database),
		repository.NewSQLiteAttractorRepo(database),
	)

	resp, err := svc.RankOffers(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Offers)
	assert.NotEmpty(t, resp.EmptyMessage)
}
