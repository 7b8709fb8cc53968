package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

func testOffer() domain.DiscoverySlotOffer {
	return domain.DiscoverySlotOffer{
		ID:          "ds-1",
		Name:        "Pottery Open Hours",
		Description: "Drop in and throw a pot. Beginners welcome, no experience needed.",
		Tags:        []string{"creative", "pottery"},
	}
}

func TestScoreOffer_AllBonuses(t *testing.T) {
	p := &domain.StudentProfile{Interests: []string{"Pottery"}}
	result := ScoreOffer(testOffer(), p)

	codes := reasonCodes(result.Reasons)
	assert.Contains(t, codes, app.ReasonTagOverlap)
	assert.Contains(t, codes, app.ReasonBeginnerFriendly)
	assert.Contains(t, codes, app.ReasonSoftSkill)
	assert.Equal(t, 85.0, result.Score, "45 + 20 + 10 + 10")
}

func TestScoreOffer_NoOverlap(t *testing.T) {
	p := &domain.StudentProfile{Interests: []string{"Robotics"}}
	offer := domain.DiscoverySlotOffer{
		ID: "ds-2", Name: "Chess Night",
		Description: "Competitive ladder play.",
		Tags:        []string{"strategy"},
	}
	result := ScoreOffer(offer, p)
	assert.Equal(t, 45.0, result.Score, "base only")
	assert.Empty(t, result.Reasons)
}

func TestScoreOffer_SoftSkillTagSet(t *testing.T) {
	p := &domain.StudentProfile{Interests: []string{"Robotics"}}
	for _, tag := range []string{"creative", "social", "speaking"} {
		offer := domain.DiscoverySlotOffer{ID: "ds-3", Tags: []string{tag}}
		result := ScoreOffer(offer, p)
		assert.Contains(t, reasonCodes(result.Reasons), app.ReasonSoftSkill, "tag=%s", tag)
	}
}

func TestScoreOffer_NilProfileNeutral(t *testing.T) {
	result := ScoreOffer(testOffer(), nil)
	assert.Equal(t, 50.0, result.Score)
	require.Len(t, result.Reasons, 1)
	assert.Equal(t, app.ReasonExploreFallback, result.Reasons[0].Code)
}

func TestRankOffers_Order(t *testing.T) {
	p := &domain.StudentProfile{Interests: []string{"Pottery"}}
	weak := domain.DiscoverySlotOffer{ID: "weak", Tags: []string{"strategy"}}

	ranked := RankOffers([]domain.DiscoverySlotOffer{weak, testOffer()}, p)
	require.Len(t, ranked, 2)
	assert.Equal(t, "ds-1", ranked[0].Offer.ID)
}
