package engine

import "github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"

// FallbackExplanation is rendered when no reason fired at all. An
// explanation must never be empty.
const FallbackExplanation = "Could be your next meaningful collision"

// PrimaryReason returns the single most salient justification for a
// candidate. Reasons are appended in fixed rule order, so the head of the
// list carries the implicit priority; when only warnings accumulated, the
// first warning is shown rather than nothing.
func PrimaryReason(reasons []app.Reason) string {
	if len(reasons) == 0 {
		return FallbackExplanation
	}
	for _, r := range reasons {
		if r.WeightDelta != nil && *r.WeightDelta > 0 {
			return r.Message
		}
	}
	return reasons[0].Message
}

// ReasonMessages flattens reasons for detail surfaces, preserving order.
// It never returns an empty list.
func ReasonMessages(reasons []app.Reason) []string {
	if len(reasons) == 0 {
		return []string{FallbackExplanation}
	}
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = r.Message
	}
	return out
}
