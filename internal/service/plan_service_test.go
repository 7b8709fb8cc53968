package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/campus"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/testutil"
)

func newPlanService(t *testing.T) (app.PlanUseCase, repository.ActivityRepo, repository.StudentProfileRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	activities := repository.NewSQLiteActivityRepo(database)
	profiles := repository.NewSQLiteStudentProfileRepo(database)
	svc := NewPlanService(activities, profiles,
		repository.NewSQLiteAttractorRepo(database), campus.DefaultGraph(), Tunables{CostUnit: 50})
	return svc, activities, profiles
}

func TestPlanRespectsBudgetAndOrdersByStart(t *testing.T) {
	svc, activities, _ := newPlanService(t)
	ctx := context.Background()

	afternoon := fixedNow().Add(5 * time.Hour)
	morning := fixedNow().Add(2 * time.Hour)
	seedActivity(t, activities, testutil.NewTestActivity("Afternoon Jam",
		testutil.WithStartTime(afternoon), testutil.WithDuration(30),
		testutil.WithLocation("Fine Arts Studio 3")))
	seedActivity(t, activities, testutil.NewTestActivity("Morning Sketch",
		testutil.WithStartTime(morning), testutil.WithDuration(30),
		testutil.WithLocation("Physics Lecture Hall 2")))

	req := app.NewPlanRequest(120)
	req.Now = fixedNow()
	resp, err := svc.Plan(ctx, req)

	require.NoError(t, err)
	require.Len(t, resp.Stops, 2)
	assert.Equal(t, "Morning Sketch", resp.Stops[0].Activity.Title)
	assert.Equal(t, "Afternoon Jam", resp.Stops[1].Activity.Title)
	assert.Equal(t, 60, resp.TotalEventMin)
	assert.LessOrEqual(t, resp.TotalEventMin+resp.TotalWalkMin, 120)
	assert.Equal(t, 0, resp.EstimatedCost)
}

func TestPlanEmptyCatalogReturnsGuidance(t *testing.T) {
	svc, _, _ := newPlanService(t)

	req := app.NewPlanRequest(120)
	req.Now = fixedNow()
	resp, err := svc.Plan(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.Stops)
	assert.Equal(t, 0, resp.CandidatesConsidered)
	assert.Equal(t, app.RelaxConstraintsMessage, resp.EmptyMessage)
}

func TestPlanHonorsStoredFreeOnlyPreference(t *testing.T) {
	svc, activities, profiles := newPlanService(t)
	ctx := context.Background()

	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile(testutil.WithFreeOnly())))
	seedActivity(t, activities, testutil.NewTestActivity("Paid Gala",
		testutil.WithStartTime(fixedNow().Add(2*time.Hour)), testutil.WithPaidEntry()))

	req := app.NewPlanRequest(120)
	req.Now = fixedNow()
	resp, err := svc.Plan(ctx, req)

	require.NoError(t, err)
	assert.Empty(t, resp.Stops)
	require.Len(t, resp.Exclusions, 1)
	assert.Equal(t, app.ExclusionNotFree, resp.Exclusions[0].Code)
}

func TestPlanRequestInterestsOverrideProfile(t *testing.T) {
	svc, activities, profiles := newPlanService(t)
	ctx := context.Background()

	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile(testutil.WithInterests("Chess"))))
	seedActivity(t, activities, testutil.NewTestActivity("Pottery Hour",
		testutil.WithStartTime(fixedNow().Add(2*time.Hour)),
		testutil.WithDepartment("Fine Arts"),
		testutil.WithAttendees("Pottery")))

	req := app.NewPlanRequest(120)
	req.Interests = []string{"Pottery"}
	req.Now = fixedNow()
	resp, err := svc.Plan(ctx, req)

	require.NoError(t, err)
	require.Len(t, resp.Stops, 1)
	codes := make([]app.ReasonCode, 0)
	for _, r := range resp.Stops[0].Reasons {
		codes = append(codes, r.Code)
	}
	assert.Contains(t, codes, app.ReasonInterestMatch)
}

func TestPlanStepFreeConstraintExcludes(t *testing.T) {
	svc, activities, _ := newPlanService(t)
	ctx := context.Background()

	// Fine Arts Studio 3 has no elevator or ramp in the default campus map.
	seedActivity(t, activities, testutil.NewTestActivity("Open Air Show",
		testutil.WithStartTime(fixedNow().Add(2*time.Hour)),
		testutil.WithLocation("Fine Arts Studio 3")))

	req := app.NewPlanRequest(120)
	req.Accessibility = []domain.AccessibilityTag{domain.AccessWheelchair}
	req.Now = fixedNow()
	resp, err := svc.Plan(ctx, req)

	require.NoError(t, err)
	assert.Empty(t, resp.Stops)
	require.Len(t, resp.Exclusions, 1)
	assert.Equal(t, app.ExclusionNoStepFreeAccess, resp.Exclusions[0].Code)
}

func TestPlanConfiguredStrategyDefault(t *testing.T) {
	// Three equal-score events, 5 min walk each, 70 min budget. Greedy
	// grabs the long one first and runs out of room; a configured exact
	// default packs the two short ones instead.
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	activities := repository.NewSQLiteActivityRepo(database)
	profiles := repository.NewSQLiteStudentProfileRepo(database)
	attractors := repository.NewSQLiteAttractorRepo(database)

	seedActivity(t, activities, testutil.NewTestActivity("Long Talk",
		testutil.WithStartTime(fixedNow().Add(time.Hour)),
		testutil.WithDuration(50),
		testutil.WithLocation("Entrepreneurship Cell")))
	seedActivity(t, activities, testutil.NewTestActivity("Short One",
		testutil.WithStartTime(fixedNow().Add(2*time.Hour)),
		testutil.WithDuration(30),
		testutil.WithLocation("Entrepreneurship Cell")))
	seedActivity(t, activities, testutil.NewTestActivity("Short Two",
		testutil.WithStartTime(fixedNow().Add(3*time.Hour)),
		testutil.WithDuration(30),
		testutil.WithLocation("Entrepreneurship Cell")))

	req := app.NewPlanRequest(70)
	req.Now = fixedNow()

	greedy := NewPlanService(activities, profiles, attractors, campus.DefaultGraph(), Tunables{})
	resp, err := greedy.Plan(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Stops, 1)
	assert.Equal(t, "Long Talk", resp.Stops[0].Activity.Title)

	exact := NewPlanService(activities, profiles, attractors, campus.DefaultGraph(),
		Tunables{Strategy: "exact"})
	resp, err = exact.Plan(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Stops, 2)

	// An explicit request still overrides the configured default.
	req.Strategy = "greedy"
	resp, err = exact.Plan(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Stops, 1)
}
