// Package engine implements the constraint-aware recommendation and
// scheduling core: the relevance scorer, the discovery-offer scorer, and
// the itinerary planner. Everything here is pure and synchronous; callers
// supply a consistent snapshot of profile, attractor, and candidates per
// invocation and the engine neither caches nor mutates them.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

const (
	baseScore        = 40
	neutralScore     = 50
	offerBaseScore   = 45
	defaultBudgetMin = 45
)

// softSkillTags is the fixed tag set the offer scorer rewards.
var softSkillTags = map[string]bool{
	"creative": true,
	"social":   true,
	"speaking": true,
}

// opennessCues mark an offer description as beginner friendly.
var opennessCues = []string{
	"beginner", "no experience", "open to all", "everyone welcome", "newcomer",
}

// ScoredActivity is one activity with its suitability score and ordered
// reasons. Created per scoring pass, never persisted.
type ScoredActivity struct {
	Activity domain.Activity
	Score    float64
	Reasons  []app.Reason
}

// scoringContext bundles the per-pass read-only inputs.
type scoringContext struct {
	profile  *domain.StudentProfile
	visited  map[string]bool
	interest map[string]bool
	budget   int
}

// Scorer computes suitability scores. The zero value is ready to use;
// BudgetMin overrides the time budget assumed for profiles that carry none.
type Scorer struct {
	BudgetMin int
}

func (s Scorer) budget() int {
	if s.BudgetMin > 0 {
		return s.BudgetMin
	}
	return defaultBudgetMin
}

// ScoreActivity computes a 0-100 suitability score for one activity against
// one profile/attractor snapshot. Deterministic, no I/O. A nil profile
// yields the neutral score with a single generic reason.
func (s Scorer) ScoreActivity(a domain.Activity, profile *domain.StudentProfile, attractor *domain.AttractorState) ScoredActivity {
	if profile == nil {
		return ScoredActivity{
			Activity: a,
			Score:    neutralScore,
			Reasons:  []app.Reason{{Code: app.ReasonExploreFallback, Message: "Explore something new"}},
		}
	}

	sctx := scoringContext{
		profile:  profile,
		visited:  visitedSet(profile, attractor),
		interest: profile.InterestSet(),
		budget:   s.budget(),
	}

	result := ScoredActivity{Activity: a, Score: baseScore}
	factors := []func(domain.Activity, scoringContext) (float64, *app.Reason){
		scoreNewDepartment,
		scoreInterestMatch,
		scoreCollisionPotential,
		scoreFreeFit,
		scoreTimeBudget,
		scoreDiscoverySlot,
	}
	for _, f := range factors {
		delta, reason := f(a, sctx)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}

	result.Score = Clamp(result.Score)
	return result
}

// visitedSet derives the novelty baseline: the attractor's visited
// departments when history exists, otherwise just the student's own
// department.
func visitedSet(profile *domain.StudentProfile, attractor *domain.AttractorState) map[string]bool {
	if attractor != nil && len(attractor.DepartmentsVisited) > 0 {
		return attractor.VisitedSet()
	}
	set := make(map[string]bool, 1)
	if profile.Department != "" {
		set[strings.ToLower(profile.Department)] = true
	}
	return set
}

func scoreNewDepartment(a domain.Activity, sctx scoringContext) (float64, *app.Reason) {
	if sctx.visited[strings.ToLower(a.Department)] {
		return 0, nil
	}
	delta := 20.0
	return delta, &app.Reason{
		Code:        app.ReasonNewDepartment,
		Message:     "New department for you: breaks your bubble",
		WeightDelta: &delta,
	}
}

func scoreInterestMatch(a domain.Activity, sctx scoringContext) (float64, *app.Reason) {
	var matches []string
	for _, dept := range a.AttendeeDepartments {
		if sctx.interest[strings.ToLower(dept)] {
			matches = append(matches, dept)
		}
	}
	if len(matches) == 0 {
		return 0, nil
	}
	delta := 15.0
	return delta, &app.Reason{
		Code:        app.ReasonInterestMatch,
		Message:     fmt.Sprintf("Matches your interest in %s", strings.Join(matches, ", ")),
		WeightDelta: &delta,
	}
}

func scoreCollisionPotential(a domain.Activity, sctx scoringContext) (float64, *app.Reason) {
	unvisited := 0
	for _, dept := range a.AttendeeDepartments {
		if !sctx.visited[strings.ToLower(dept)] {
			unvisited++
		}
	}
	if unvisited < 2 {
		return 0, nil
	}
	delta := 10.0
	return delta, &app.Reason{
		Code:        app.ReasonCollisionPotential,
		Message:     fmt.Sprintf("High collision potential: %d departments outside your usual orbit", unvisited),
		WeightDelta: &delta,
	}
}

func scoreFreeFit(a domain.Activity, sctx scoringContext) (float64, *app.Reason) {
	if !a.IsFree || !sctx.profile.FreeOnly {
		return 0, nil
	}
	delta := 5.0
	return delta, &app.Reason{
		Code:        app.ReasonFreeFitsBudget,
		Message:     "Free: fits your budget",
		WeightDelta: &delta,
	}
}

func scoreTimeBudget(a domain.Activity, sctx scoringContext) (float64, *app.Reason) {
	budget := domain.IntFromPtrWithDefault(sctx.budget, sctx.profile.TimeBudgetMin)
	if a.DurationMin <= budget {
		delta := 5.0
		return delta, &app.Reason{
			Code:        app.ReasonFitsTimeBudget,
			Message:     "Fits your time budget",
			WeightDelta: &delta,
		}
	}
	// Informational warning, no score movement.
	return 0, &app.Reason{
		Code:    app.ReasonTimeOverBudget,
		Message: fmt.Sprintf("Runs %d min over your time budget", a.DurationMin-budget),
	}
}

func scoreDiscoverySlot(a domain.Activity, sctx scoringContext) (float64, *app.Reason) {
	if !a.DiscoverySlot {
		return 0, nil
	}
	delta := 5.0
	return delta, &app.Reason{
		Code:        app.ReasonDiscoverySlot,
		Message:     "Designed for cross-department contact",
		WeightDelta: &delta,
	}
}

// RankActivities scores every candidate and returns them highest score
// first. The sort is stable: equal scores keep their input order.
func (s Scorer) RankActivities(activities []domain.Activity, profile *domain.StudentProfile, attractor *domain.AttractorState) []ScoredActivity {
	scored := make([]ScoredActivity, len(activities))
	for i, a := range activities {
		scored[i] = s.ScoreActivity(a, profile, attractor)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// ScoreActivity scores with the default time budget.
func ScoreActivity(a domain.Activity, profile *domain.StudentProfile, attractor *domain.AttractorState) ScoredActivity {
	return Scorer{}.ScoreActivity(a, profile, attractor)
}

// RankActivities ranks with the default time budget.
func RankActivities(activities []domain.Activity, profile *domain.StudentProfile, attractor *domain.AttractorState) []ScoredActivity {
	return Scorer{}.RankActivities(activities, profile, attractor)
}

// Clamp bounds a score to [0, 100]. Additive terms can exceed the range in
// principle, so clamping is mandatory.
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
