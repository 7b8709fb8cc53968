package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/testutil"
)

func fixedNow() *time.Time {
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &ts
}

func seedActivity(t *testing.T, repo repository.ActivityRepo, a *domain.Activity) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), a))
}

func TestRankEmptyCatalogIsNotAnError(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRecommendService(
		repository.NewSQLiteActivityRepo(database),
		repository.NewSQLiteStudentProfileRepo(database),
		repository.NewSQLiteAttractorRepo(database),
		Tunables{},
	)

	req := app.NewRecommendRequest()
	req.Now = fixedNow()
	resp, err := svc.Rank(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.CandidatesConsidered)
	assert.Empty(t, resp.Items)
	assert.Equal(t, app.RelaxConstraintsMessage, resp.EmptyMessage)
}

func TestRankOrdersByScore(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	activities := repository.NewSQLiteActivityRepo(database)
	profiles := repository.NewSQLiteStudentProfileRepo(database)
	attractors := repository.NewSQLiteAttractorRepo(database)

	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile(testutil.WithInterests("AI"))))
	require.NoError(t, attractors.Upsert(ctx, testutil.NewTestAttractor()))

	start := fixedNow().Add(3 * time.Hour)
	// Same department as the student, no interest overlap.
	seedActivity(t, activities, testutil.NewTestActivity("Familiar Talk",
		testutil.WithStartTime(start)))
	// New department plus an interest hit.
	seedActivity(t, activities, testutil.NewTestActivity("AI in Music",
		testutil.WithDepartment("Music"),
		testutil.WithStartTime(start),
		testutil.WithAttendees("AI")))

	svc := NewRecommendService(activities, profiles, attractors, Tunables{})
	req := app.NewRecommendRequest()
	req.Now = fixedNow()
	resp, err := svc.Rank(ctx, req)

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "AI in Music", resp.Items[0].Activity.Title)
	assert.Greater(t, resp.Items[0].Score, resp.Items[1].Score)
	assert.Equal(t, 2, resp.CandidatesConsidered)
}

func TestRankWithoutProfileUsesNeutralScore(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	activities := repository.NewSQLiteActivityRepo(database)

	seedActivity(t, activities, testutil.NewTestActivity("Anything",
		testutil.WithStartTime(fixedNow().Add(time.Hour))))

	svc := NewRecommendService(activities,
		repository.NewSQLiteStudentProfileRepo(database),
		repository.NewSQLiteAttractorRepo(database), Tunables{})
	req := app.NewRecommendRequest()
	req.Now = fixedNow()
	resp, err := svc.Rank(ctx, req)

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 50.0, resp.Items[0].Score)
}

func TestRankSkipsPastEvents(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	activities := repository.NewSQLiteActivityRepo(database)

	seedActivity(t, activities, testutil.NewTestActivity("Yesterday",
		testutil.WithStartTime(fixedNow().Add(-24*time.Hour))))
	seedActivity(t, activities, testutil.NewTestActivity("Tomorrow",
		testutil.WithStartTime(fixedNow().Add(24*time.Hour))))

	svc := NewRecommendService(activities,
		repository.NewSQLiteStudentProfileRepo(database),
		repository.NewSQLiteAttractorRepo(database), Tunables{})
	req := app.NewRecommendRequest()
	req.Now = fixedNow()
	resp, err := svc.Rank(ctx, req)

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Tomorrow", resp.Items[0].Activity.Title)
}
