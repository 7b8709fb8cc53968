package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// ScoredOffer is one discovery-slot offer with its score and reasons.
type ScoredOffer struct {
	Offer   domain.DiscoverySlotOffer
	Score   float64
	Reasons []app.Reason
}

// ScoreOffer scores a non-timed discovery-slot offer. Offers have no start
// instant and no department of their own, so tag overlap stands in for
// department novelty and there is no duration term.
func ScoreOffer(offer domain.DiscoverySlotOffer, profile *domain.StudentProfile) ScoredOffer {
	if profile == nil {
		return ScoredOffer{
			Offer:   offer,
			Score:   neutralScore,
			Reasons: []app.Reason{{Code: app.ReasonExploreFallback, Message: "Explore something new"}},
		}
	}

	result := ScoredOffer{Offer: offer, Score: offerBaseScore}
	interest := profile.InterestSet()

	var overlap []string
	for _, tag := range offer.Tags {
		if interest[strings.ToLower(tag)] {
			overlap = append(overlap, tag)
		}
	}
	if len(overlap) > 0 {
		delta := 20.0
		result.Score += delta
		result.Reasons = append(result.Reasons, app.Reason{
			Code:        app.ReasonTagOverlap,
			Message:     fmt.Sprintf("Matches your interest in %s", strings.Join(overlap, ", ")),
			WeightDelta: &delta,
		})
	}

	if hasOpennessCue(offer.Description) {
		delta := 10.0
		result.Score += delta
		result.Reasons = append(result.Reasons, app.Reason{
			Code:        app.ReasonBeginnerFriendly,
			Message:     "Beginner friendly: no experience expected",
			WeightDelta: &delta,
		})
	}

	if hasSoftSkillTag(offer.Tags) {
		delta := 10.0
		result.Score += delta
		result.Reasons = append(result.Reasons, app.Reason{
			Code:        app.ReasonSoftSkill,
			Message:     "Builds creative and social skills",
			WeightDelta: &delta,
		})
	}

	result.Score = Clamp(result.Score)
	return result
}

// RankOffers scores and stably sorts offers, highest first.
func RankOffers(offers []domain.DiscoverySlotOffer, profile *domain.StudentProfile) []ScoredOffer {
	scored := make([]ScoredOffer, len(offers))
	for i, o := range offers {
		scored[i] = ScoreOffer(o, profile)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func hasOpennessCue(description string) bool {
	lower := strings.ToLower(description)
	for _, cue := range opennessCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

func hasSoftSkillTag(tags []string) bool {
	for _, t := range tags {
		if softSkillTags[strings.ToLower(t)] {
			return true
		}
	}
	return false
}
