package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDBInMemory(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var fk int
	require.NoError(t, conn.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrateCreatesTables(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"activities", "discovery_slots", "student_profile", "attractor_state", "visit_logs"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))
}

func TestActivityCategoryCheck(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO activities (id, title, category, start_time, duration_min, created_at, updated_at)
		VALUES ('a1', 'x', 'seminar', '2026-03-14T10:00:00Z', 30, '2026-03-14T09:00:00Z', '2026-03-14T09:00:00Z')`)
	assert.Error(t, err)
}

func TestActivityDurationCheck(t *testing.T) {
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO activities (id, title, category, start_time, duration_min, created_at, updated_at)
		VALUES ('a1', 'x', 'talk', '2026-03-14T10:00:00Z', 0, '2026-03-14T09:00:00Z', '2026-03-14T09:00:00Z')`)
	assert.Error(t, err)
}
