package formatter

import (
	"testing"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/intent"
	"github.com/stretchr/testify/assert"
)

func TestFormatAsk(t *testing.T) {
	delta := 15.0
	resp := &app.AskResponse{
		Explanation: "Free events only. Under 30 minutes",
		Matches: []app.RankedActivity{
			sampleRanked("Pottery Taster", 82,
				app.Reason{Code: app.ReasonInterestMatch, Message: "Matches your interest in art", WeightDelta: &delta},
				app.Reason{Code: app.ReasonFreeFitsBudget, Message: "Free entry"},
			),
		},
	}

	out := stripANSI(FormatAsk(resp))

	assert.Contains(t, out, "Free events only. Under 30 minutes")
	assert.Contains(t, out, "1. Pottery Taster")
	assert.Contains(t, out, "WHY: Matches your interest in art (+15)")
	// Only the first reason shows on the conversational surface.
	assert.NotContains(t, out, "Free entry")
}

func TestFormatAsk_NoMatch(t *testing.T) {
	resp := &app.AskResponse{EmptyMessage: intent.NoMatchGuidance}

	out := stripANSI(FormatAsk(resp))
	assert.Contains(t, out, intent.NoMatchGuidance)
}
