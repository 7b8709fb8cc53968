package app

import (
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// UnexploredArea is one campus department the student has not touched yet,
// with a ready-made nudge line for display.
type UnexploredArea struct {
	Name  string
	Nudge string
}

// StatusResponse is the bubble dashboard snapshot.
type StatusResponse struct {
	GeneratedAt      time.Time
	BubblePct        float64
	DepartmentsRatio string
	CanteenVariety   float64
	EventDiversity   float64
	Connections      int
	DriftScore       int
	DriftStreak      int
	Unexplored       []UnexploredArea
}

// LogVisitRequest records an attended activity and its outcome.
type LogVisitRequest struct {
	ActivityID     string
	Outcome        domain.VisitOutcome
	NewConnections int
	Note           string
	When           *time.Time
}

// LogVisitResponse reports the attractor movement caused by the visit.
type LogVisitResponse struct {
	Visit         domain.VisitLog
	BubblePct     float64
	BubbleDelta   float64
	DriftScore    int
	NewDepartment bool
}

// RankedOffer is one scored discovery-slot offer.
type RankedOffer struct {
	Offer   domain.DiscoverySlotOffer
	Score   float64
	Reasons []Reason
}

// OffersResponse carries ranked discovery-slot offers, highest first.
type OffersResponse struct {
	GeneratedAt  time.Time
	Offers       []RankedOffer
	EmptyMessage string
}
