package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/testutil"
)

func TestProfileGetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileUpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProfile(
		testutil.WithInterests("AI", "Music"),
		testutil.WithSkills("Python"),
		testutil.WithTimeBudget(45),
		testutil.WithFreeOnly(),
		testutil.WithAccessibility(domain.AccessWheelchair),
	)
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "Computer Science", got.Department)
	assert.Equal(t, []string{"AI", "Music"}, got.Interests)
	assert.Equal(t, []string{"Python"}, got.Skills)
	require.NotNil(t, got.TimeBudgetMin)
	assert.Equal(t, 45, *got.TimeBudgetMin)
	assert.True(t, got.FreeOnly)
	assert.Equal(t, []domain.AccessibilityTag{domain.AccessWheelchair}, got.Accessibility)
}

func TestProfileUpsertReplacesSingleton(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile()))

	updated := testutil.NewTestProfile(testutil.WithInterests("Theatre"))
	updated.Department = "Performing Arts"
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Performing Arts", got.Department)
	assert.Equal(t, []string{"Theatre"}, got.Interests)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM student_profile`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestProfileNilBudgetRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStudentProfileRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile()))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.TimeBudgetMin)
}
