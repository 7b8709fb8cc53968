package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 50, cfg.CostUnit)
	assert.Equal(t, 10, cfg.DefaultWalkMin)
	assert.Equal(t, 120, cfg.ChatBudgetMin)
	assert.Equal(t, 45, cfg.ScoreBudgetMin)
	assert.Equal(t, 3, cfg.ChatLimit)
	assert.Equal(t, "greedy", cfg.Strategy)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KARM_DB_PATH", "/tmp/test-karm.db")
	t.Setenv("KARM_COST_UNIT", "75")
	t.Setenv("KARM_STRATEGY", "exact")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-karm.db", cfg.DBPath)
	assert.Equal(t, 75, cfg.CostUnit)
	assert.Equal(t, "exact", cfg.Strategy)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chat_limit: 5\ncost_unit: 25\n"), 0644))
	t.Setenv("KARM_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ChatLimit)
	assert.Equal(t, 25, cfg.CostUnit)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cost_unit: 25\n"), 0644))
	t.Setenv("KARM_CONFIG", path)
	t.Setenv("KARM_COST_UNIT", "99")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.CostUnit)
}

func TestLoadRejectsBadStrategy(t *testing.T) {
	t.Setenv("KARM_STRATEGY", "quantum")
	_, err := Load()
	assert.Error(t, err)
}
