package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/testutil"
)

const sampleFeed = `{
	"events": [
		{"title": "Tea & Theory", "department": "Philosophy", "category": "talk",
		 "start_time": "2026-03-14T17:30:00Z", "duration_min": 30},
		{"title": "Broken Entry", "category": "talk", "start_time": "whenever", "duration_min": 30},
		{"title": "Pottery Wheel Intro", "department": "Fine Arts", "category": "workshop",
		 "start_time": "2026-03-15T11:00:00Z", "duration_min": 45, "is_free": false}
	],
	"discovery_slots": [
		{"name": "Improv Open Hour", "organizer_type": "club", "tags": ["theatre", "speaking"]}
	]
}`

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportFeedPersistsValidRecords(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	activities := repository.NewSQLiteActivityRepo(database)
	slots := repository.NewSQLiteDiscoverySlotRepo(database)
	svc := NewActivityService(activities, testutil.NewTestUoW(database))

	result, err := svc.ImportFeed(ctx, writeFeed(t, sampleFeed))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "invalid start_time")

	list, err := activities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	slotList, err := slots.List(ctx)
	require.NoError(t, err)
	assert.Len(t, slotList, 1)
}

func TestImportFeedRollsBackAtomically(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	activities := repository.NewSQLiteActivityRepo(database)

	boom := errors.New("constraint blew up")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	svc := NewActivityService(activities, uow)

	_, err := svc.ImportFeed(ctx, writeFeed(t, sampleFeed))
	assert.ErrorIs(t, err, boom)

	list, err := activities.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "partial import must not persist")
}

func TestImportFeedMissingFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewActivityService(repository.NewSQLiteActivityRepo(database), testutil.NewTestUoW(database))

	_, err := svc.ImportFeed(context.Background(), "/does/not/exist.json")
	assert.Error(t, err)
}
