package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
)

func TestPrimaryReason_FirstPositiveWins(t *testing.T) {
	pos := 20.0
	reasons := []app.Reason{
		{Code: app.ReasonNewDepartment, Message: "New department for you", WeightDelta: &pos},
		{Code: app.ReasonFitsTimeBudget, Message: "Fits your time budget", WeightDelta: &pos},
	}
	assert.Equal(t, "New department for you", PrimaryReason(reasons))
}

func TestPrimaryReason_WarningWhenNoPositive(t *testing.T) {
	reasons := []app.Reason{
		{Code: app.ReasonTimeOverBudget, Message: "Runs 30 min over your time budget"},
	}
	assert.Equal(t, "Runs 30 min over your time budget", PrimaryReason(reasons))
}

func TestPrimaryReason_NeverEmpty(t *testing.T) {
	assert.Equal(t, FallbackExplanation, PrimaryReason(nil))
	assert.Equal(t, FallbackExplanation, PrimaryReason([]app.Reason{}))
}

func TestReasonMessages_PreservesOrder(t *testing.T) {
	pos := 5.0
	reasons := []app.Reason{
		{Code: app.ReasonNewDepartment, Message: "first", WeightDelta: &pos},
		{Code: app.ReasonDiscoverySlot, Message: "second", WeightDelta: &pos},
	}
	assert.Equal(t, []string{"first", "second"}, ReasonMessages(reasons))
}

func TestReasonMessages_FallbackWhenEmpty(t *testing.T) {
	assert.Equal(t, []string{FallbackExplanation}, ReasonMessages(nil))
}
