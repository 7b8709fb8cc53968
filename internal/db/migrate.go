package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// migration loop re-runs everything on each open and tolerates duplicate
// column errors from ALTER TABLE backfills.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		department           TEXT NOT NULL DEFAULT '',
		category             TEXT NOT NULL DEFAULT 'other'
		                     CHECK(category IN ('talk','workshop','social','performance','sports','other')),
		location             TEXT NOT NULL DEFAULT '',
		start_time           TEXT NOT NULL,
		duration_min         INTEGER NOT NULL CHECK(duration_min > 0),
		is_free              INTEGER NOT NULL DEFAULT 1,
		attendee_departments TEXT NOT NULL DEFAULT '[]',
		discovery_slot       INTEGER NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category)`,

	`CREATE TABLE IF NOT EXISTS discovery_slots (
		id              TEXT PRIMARY KEY,
		organizer_id    TEXT NOT NULL DEFAULT '',
		organizer_type  TEXT NOT NULL DEFAULT 'club'
		                CHECK(organizer_type IN ('club','vendor','event')),
		name            TEXT NOT NULL,
		location        TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		tags            TEXT NOT NULL DEFAULT '[]',
		available_times TEXT NOT NULL DEFAULT '[]',
		created_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS student_profile (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL DEFAULT '',
		department      TEXT NOT NULL DEFAULT '',
		year            INTEGER NOT NULL DEFAULT 0,
		skills          TEXT NOT NULL DEFAULT '[]',
		interests       TEXT NOT NULL DEFAULT '[]',
		time_budget_min INTEGER,
		free_only       INTEGER NOT NULL DEFAULT 0,
		accessibility   TEXT NOT NULL DEFAULT '[]',
		drift_score     INTEGER NOT NULL DEFAULT 0,
		drift_streak    INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS attractor_state (
		student_id            TEXT PRIMARY KEY,
		departments_visited   TEXT NOT NULL DEFAULT '[]',
		canteen_counters_used TEXT NOT NULL DEFAULT '[]',
		categories_attended   TEXT NOT NULL DEFAULT '[]',
		content_domains       TEXT NOT NULL DEFAULT '[]',
		connection_count      INTEGER NOT NULL DEFAULT 0,
		last_updated          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS visit_logs (
		id              TEXT PRIMARY KEY,
		activity_id     TEXT NOT NULL DEFAULT '',
		attended_at     TEXT NOT NULL,
		outcome         TEXT NOT NULL DEFAULT 'attended'
		                CHECK(outcome IN ('pending','attended','skipped','interesting')),
		new_connections INTEGER NOT NULL DEFAULT 0,
		note            TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_visit_logs_activity ON visit_logs(activity_id)`,
}
