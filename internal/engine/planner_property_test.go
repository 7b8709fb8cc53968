package engine

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/campus"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

var propertyLocations = []string{
	"Music Department Hall",
	"Entrepreneurship Cell",
	"Fine Arts Studio 3",
	"Physics Lecture Hall 2",
	"Building C, Room 204",
	"Philosophy Building, Room 101",
	"Architecture Building, Ground Floor",
	"Unknown Annex",
}

// TestPlan_Invariants_BudgetNeverExceeded property-tests the core planner
// guarantee: sum(duration) + sum(walk) stays at or under the budget, and
// every exposed score is within [0, 100], across both strategies.
func TestPlan_Invariants_BudgetNeverExceeded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 300; trial++ {
		budget := rng.Intn(240) + 1
		freeOnly := rng.Intn(2) == 1
		stepFree := rng.Intn(3) == 0
		strategy := Strategy(GreedyStrategy{})
		if rng.Intn(2) == 1 {
			strategy = ExactStrategy{}
		}

		n := rng.Intn(10) + 1
		scored := make([]ScoredActivity, n)
		for i := range scored {
			scored[i] = ScoredActivity{
				Activity: domain.Activity{
					ID:          fmt.Sprintf("evt-%d", i),
					Title:       fmt.Sprintf("Activity %d", i),
					Department:  "Music",
					Category:    domain.CategoryWorkshop,
					Location:    propertyLocations[rng.Intn(len(propertyLocations))],
					StartTime:   day.Add(time.Duration(rng.Intn(14)+8) * time.Hour),
					DurationMin: rng.Intn(180) - 10, // occasionally invalid
					IsFree:      rng.Intn(2) == 1,
				},
				Score: float64(rng.Intn(101)),
			}
		}

		cons := Constraints{
			MaxTotalMin:   &budget,
			FreeOnly:      freeOnly,
			StartLocation: "Main Gate",
		}
		if stepFree {
			cons.Accessibility = []domain.AccessibilityTag{domain.AccessWheelchair}
		}

		planner := NewPlanner(campus.DefaultGraph())
		planner.Strategy = strategy
		it := planner.Plan(scored, cons)

		totalMin := 0
		for _, stop := range it.Stops {
			totalMin += stop.Scored.Activity.DurationMin + stop.WalkMin

			assert.GreaterOrEqual(t, stop.Scored.Score, 0.0, "trial %d", trial)
			assert.LessOrEqual(t, stop.Scored.Score, 100.0, "trial %d", trial)

			if freeOnly {
				assert.True(t, stop.Scored.Activity.IsFree,
					"trial %d: free-only plan admitted a paid stop", trial)
			}
			if stepFree {
				assert.True(t, stop.Accessible,
					"trial %d: step-free plan admitted an inaccessible stop", trial)
			}
			assert.Greater(t, stop.Scored.Activity.DurationMin, 0,
				"trial %d: invalid duration reached the itinerary", trial)
		}
		assert.LessOrEqual(t, totalMin, budget,
			"trial %d: %d event+walk minutes exceed budget %d", trial, totalMin, budget)
		assert.Equal(t, totalMin, it.TotalEventMin+it.TotalWalkMin, "trial %d", trial)
	}
}

// TestPlan_Idempotent re-plans the same inputs and expects identical output.
func TestPlan_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	scored := make([]ScoredActivity, 8)
	for i := range scored {
		scored[i] = ScoredActivity{
			Activity: domain.Activity{
				ID:          fmt.Sprintf("evt-%d", i),
				Department:  "Music",
				Location:    propertyLocations[rng.Intn(len(propertyLocations))],
				StartTime:   day.Add(time.Duration(rng.Intn(12)+8) * time.Hour),
				DurationMin: rng.Intn(90) + 15,
				IsFree:      true,
			},
			Score: float64(rng.Intn(101)),
		}
	}

	budget := 180
	cons := Constraints{MaxTotalMin: &budget, StartLocation: "Library"}
	planner := NewPlanner(campus.DefaultGraph())

	first := planner.Plan(scored, cons)
	second := planner.Plan(scored, cons)
	assert.Equal(t, first, second)
}
