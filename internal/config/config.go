// Package config holds process configuration for the karm CLI. Values
// layer defaults, an optional YAML file, and KARM_-prefixed environment
// variables.
package config

import (
	"os"
	"path/filepath"
)

// Config contains all tunables the CLI wires into services and the engine.
type Config struct {
	// DBPath locates the SQLite database file.
	DBPath string `koanf:"db_path"`

	// CampusGraphPath points at an optional YAML campus map that overlays
	// the built-in one.
	CampusGraphPath string `koanf:"campus_graph_path"`

	// CostUnit is the flat per-paid-event cost estimate used in itineraries.
	CostUnit int `koanf:"cost_unit"`

	// DefaultWalkMin is assumed for walks between unmapped locations.
	DefaultWalkMin int `koanf:"default_walk_min"`

	// ChatBudgetMin is the time ceiling assumed in chat queries with no
	// duration cue.
	ChatBudgetMin int `koanf:"chat_budget_min"`

	// ScoreBudgetMin is the time budget assumed when scoring a profile
	// that has none.
	ScoreBudgetMin int `koanf:"score_budget_min"`

	// ChatLimit caps the number of chat matches shown.
	ChatLimit int `koanf:"chat_limit"`

	// Strategy selects the itinerary packing strategy: greedy or exact.
	Strategy string `koanf:"strategy"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		DBPath:         defaultDBPath(),
		CostUnit:       50,
		DefaultWalkMin: 10,
		ChatBudgetMin:  120,
		ScoreBudgetMin: 45,
		ChatLimit:      3,
		Strategy:       "greedy",
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "karm.db"
	}
	return filepath.Join(home, ".karm", "karm.db")
}
