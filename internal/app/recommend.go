package app

import (
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// RankedActivity is one scored candidate in a ranked list.
type RankedActivity struct {
	Activity domain.Activity
	Score    float64
	Reasons  []Reason
}

// RecommendRequest asks for the explore-feed ranking. Now is injectable for
// deterministic tests; nil means wall clock.
type RecommendRequest struct {
	Limit        int
	UpcomingOnly bool
	Now          *time.Time
}

// NewRecommendRequest returns a request with the default feed size.
func NewRecommendRequest() RecommendRequest {
	return RecommendRequest{Limit: 10, UpcomingOnly: true}
}

// RecommendResponse carries the ranked feed, highest score first.
// EmptyMessage is set instead of an error when nothing survives filtering.
type RecommendResponse struct {
	GeneratedAt          time.Time
	Items                []RankedActivity
	CandidatesConsidered int
	EmptyMessage         string
}
