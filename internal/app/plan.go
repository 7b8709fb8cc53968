package app

import (
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// PlanRequest carries the day-planner constraint set.
type PlanRequest struct {
	// MaxTotalMin bounds event + walking minutes; nil means unconstrained.
	MaxTotalMin   *int
	FreeOnly      bool
	Accessibility []domain.AccessibilityTag
	Interests     []string
	StartLocation string

	// Strategy selects the itinerary selection heuristic ("greedy" or
	// "exact"); empty falls back to the configured default.
	Strategy string

	Now *time.Time
}

// NewPlanRequest returns a request starting from the Main Gate with the
// given minute budget.
func NewPlanRequest(maxTotalMin int) PlanRequest {
	return PlanRequest{
		MaxTotalMin:   &maxTotalMin,
		StartLocation: "Main Gate",
	}
}

// ItineraryStop is one selected activity with its computed walking segment.
type ItineraryStop struct {
	Activity   domain.Activity
	Score      float64
	Reasons    []Reason
	WalkMin    int
	Accessible bool
	Zone       string
}

// PlanResponse is the bounded, ordered itinerary plus aggregate totals.
// The itinerary is a pure function of its inputs; callers rebuild it
// whenever constraints change.
type PlanResponse struct {
	GeneratedAt          time.Time
	Stops                []ItineraryStop
	TotalEventMin        int
	TotalWalkMin         int
	EstimatedCost        int
	CandidatesConsidered int
	Exclusions           []Exclusion
	EmptyMessage         string
}
