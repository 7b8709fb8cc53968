package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/campus"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// DefaultCostUnit is the flat per-item monetary estimate applied to each
// non-free stop. A deliberate simplification, not a price lookup.
const DefaultCostUnit = 50

// nearStartWalkMin is the walk length at or under which a stop is flagged
// as close to the chosen start point. Informational only.
const nearStartWalkMin = 5

// Constraints is the planner's budget and filter set.
type Constraints struct {
	// MaxTotalMin bounds summed event + walk minutes; nil means unbounded.
	MaxTotalMin   *int
	FreeOnly      bool
	Accessibility []domain.AccessibilityTag
	StartLocation string
}

// needsStepFree reports whether any tag demands step-free access.
func (c Constraints) needsStepFree() bool {
	for _, tag := range c.Accessibility {
		if domain.StepFreeTags[tag] {
			return true
		}
	}
	return false
}

func (c Constraints) needsSensoryFriendly() bool {
	for _, tag := range c.Accessibility {
		if tag == domain.AccessSensory {
			return true
		}
	}
	return false
}

// Stop is one selected itinerary entry with its walking segment.
type Stop struct {
	Scored     ScoredActivity
	WalkMin    int
	Accessible bool
	Zone       string
}

// Itinerary is the ordered, budget-bounded plan. It is a pure function of
// its inputs and carries no independent lifecycle; callers rebuild it
// whenever constraints or candidates change.
type Itinerary struct {
	Stops                []Stop
	TotalEventMin        int
	TotalWalkMin         int
	EstimatedCost        int
	CandidatesConsidered int
	Exclusions           []app.Exclusion
}

// Planner turns a scored candidate set into an itinerary.
type Planner struct {
	Graph    *campus.Graph
	CostUnit int
	Strategy Strategy
}

// NewPlanner returns a Planner with the greedy strategy and default cost unit.
func NewPlanner(graph *campus.Graph) *Planner {
	return &Planner{Graph: graph, CostUnit: DefaultCostUnit, Strategy: GreedyStrategy{}}
}

// candidate is one filtered activity with planner-adjusted ordering data.
type candidate struct {
	stop     Stop
	adjusted float64
	minutes  int
}

// Plan selects and orders a subset of the scored candidates so that summed
// event + walk minutes never exceed the constraint budget. Selected stops
// are re-sorted by start instant for display; that ordering is independent
// of the selection order. The budget check is cumulative minutes only:
// calendar overlap between chosen stops is intentionally not checked.
func (p *Planner) Plan(scored []ScoredActivity, cons Constraints) Itinerary {
	itinerary := Itinerary{}

	cap, bounded := effectiveBudget(cons.MaxTotalMin)
	stepFree := cons.needsStepFree()
	sensory := cons.needsSensoryFriendly()

	var candidates []candidate
	for _, sa := range scored {
		a := sa.Activity
		if excl := p.exclude(a, cons, cap, bounded, stepFree); excl != nil {
			itinerary.Exclusions = append(itinerary.Exclusions, *excl)
			continue
		}

		adjusted := sa.Score
		reasons := append([]app.Reason(nil), sa.Reasons...)

		// Imperfect but non-blocking fit: performances may be loud.
		if sensory && a.Category == domain.CategoryPerformance {
			delta := -10.0
			adjusted += delta
			reasons = append(reasons, app.Reason{
				Code:        app.ReasonSensoryCaution,
				Message:     "Performance venues may be loud",
				WeightDelta: &delta,
			})
		}

		walk := p.Graph.WalkMinutes(cons.StartLocation, a.Location)
		adjusted -= float64(walk)
		if cons.StartLocation != "" && walk <= nearStartWalkMin {
			reasons = append(reasons, app.Reason{
				Code:    app.ReasonNearStart,
				Message: fmt.Sprintf("Only %d min from %s", walk, cons.StartLocation),
			})
		}

		// The bonus counts every distinct department on the activity, its
		// own included. The reason only appears past one.
		n := distinctDepartments(a)
		delta := float64(3 * n)
		adjusted += delta
		if n >= 2 {
			reasons = append(reasons, app.Reason{
				Code:        app.ReasonCrossDepartment,
				Message:     fmt.Sprintf("Draws %d departments together", n),
				WeightDelta: &delta,
			})
		}

		candidates = append(candidates, candidate{
			stop: Stop{
				Scored:     ScoredActivity{Activity: a, Score: Clamp(adjusted), Reasons: reasons},
				WalkMin:    walk,
				Accessible: p.Graph.StepFree(a.Location),
				Zone:       p.Graph.Zone(a.Location),
			},
			adjusted: Clamp(adjusted),
			minutes:  a.DurationMin + walk,
		})
	}

	itinerary.CandidatesConsidered = len(candidates)
	if len(candidates) == 0 {
		return itinerary
	}

	// Stable: equal adjusted scores keep original candidate order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].adjusted > candidates[j].adjusted
	})

	items := make([]PackItem, len(candidates))
	for i, c := range candidates {
		items[i] = PackItem{Index: i, Minutes: c.minutes, Value: c.adjusted}
	}
	strategy := p.Strategy
	if strategy == nil {
		strategy = GreedyStrategy{}
	}
	for _, idx := range strategy.Pack(items, cap) {
		c := candidates[idx]
		itinerary.Stops = append(itinerary.Stops, c.stop)
		itinerary.TotalEventMin += c.stop.Scored.Activity.DurationMin
		itinerary.TotalWalkMin += c.stop.WalkMin
		if !c.stop.Scored.Activity.IsFree {
			itinerary.EstimatedCost += p.costUnit()
		}
	}

	// Timeline ordering for display.
	sort.SliceStable(itinerary.Stops, func(i, j int) bool {
		return itinerary.Stops[i].Scored.Activity.StartTime.Before(itinerary.Stops[j].Scored.Activity.StartTime)
	})

	return itinerary
}

// exclude applies the hard filters. It returns nil when the activity stays
// eligible.
func (p *Planner) exclude(a domain.Activity, cons Constraints, cap int, bounded, stepFree bool) *app.Exclusion {
	if a.DurationMin <= 0 {
		return &app.Exclusion{
			ActivityID: a.ID, Title: a.Title,
			Code:    app.ExclusionInvalidDuration,
			Message: "Duration is missing or not a positive number",
		}
	}
	if cons.FreeOnly && !a.IsFree {
		return &app.Exclusion{
			ActivityID: a.ID, Title: a.Title,
			Code:    app.ExclusionNotFree,
			Message: "Not free, and the plan is free-only",
		}
	}
	// Per-item cap, independent of the aggregate budget.
	if bounded && a.DurationMin > cap {
		return &app.Exclusion{
			ActivityID: a.ID, Title: a.Title,
			Code:    app.ExclusionExceedsTimeCap,
			Message: fmt.Sprintf("Runs %d min, longer than the whole %d min budget", a.DurationMin, cap),
		}
	}
	if stepFree && !p.Graph.StepFree(a.Location) {
		return &app.Exclusion{
			ActivityID: a.ID, Title: a.Title,
			Code:    app.ExclusionNoStepFreeAccess,
			Message: fmt.Sprintf("%s has no elevator or ramp access", a.Location),
		}
	}
	return nil
}

func (p *Planner) costUnit() int {
	if p.CostUnit > 0 {
		return p.CostUnit
	}
	return DefaultCostUnit
}

// effectiveBudget normalizes the nullable budget: nil means unbounded,
// negative values collapse to zero (everything is over cap).
func effectiveBudget(max *int) (cap int, bounded bool) {
	if max == nil {
		return math.MaxInt / 2, false
	}
	if *max < 0 {
		return 0, true
	}
	return *max, true
}

// distinctDepartments counts the case-folded distinct department tags on an
// activity (its own department plus expected attendees).
func distinctDepartments(a domain.Activity) int {
	seen := make(map[string]bool)
	for _, d := range a.DepartmentTags() {
		if d != "" {
			seen[strings.ToLower(d)] = true
		}
	}
	return len(seen)
}
