package service

import "github.com/dkwarude-cell/AMD-Karm-Ai/internal/engine"

// Tunables carries the config-derived knobs the use cases consume. The
// zero value falls back to the engine and intent package defaults.
type Tunables struct {
	// CostUnit is the flat per-paid-event cost estimate in itineraries.
	CostUnit int
	// ScoreBudgetMin replaces the scorer's assumed time budget for
	// profiles that carry none.
	ScoreBudgetMin int
	// ChatBudgetMin replaces the chat ceiling assumed when neither the
	// query nor the profile supplies a duration.
	ChatBudgetMin int
	// ChatLimit caps chat matches when the request does not.
	ChatLimit int
	// Strategy is the packing strategy used when the request names none.
	Strategy string
}

func (t Tunables) costUnit() int {
	if t.CostUnit > 0 {
		return t.CostUnit
	}
	return engine.DefaultCostUnit
}

func (t Tunables) scorer() engine.Scorer {
	return engine.Scorer{BudgetMin: t.ScoreBudgetMin}
}
