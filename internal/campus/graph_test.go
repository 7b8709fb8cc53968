package campus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkMinutes_KnownPair(t *testing.T) {
	g := DefaultGraph()
	assert.Equal(t, 8, g.WalkMinutes("Main Gate", "Music Department Hall"))
	assert.Equal(t, 3, g.WalkMinutes("CS Block", "Physics Lecture Hall 2"))
}

func TestWalkMinutes_UnknownFallsBack(t *testing.T) {
	g := DefaultGraph()
	assert.Equal(t, DefaultWalkMinutes, g.WalkMinutes("Main Gate", "Secret Rooftop"))
	assert.Equal(t, DefaultWalkMinutes, g.WalkMinutes("Hostel B", "Music Department Hall"))
}

func TestWalkMinutes_ConfiguredFallback(t *testing.T) {
	g := DefaultGraph()
	g.DefaultWalkMin = 15
	assert.Equal(t, 15, g.WalkMinutes("Main Gate", "Secret Rooftop"))
	// Known pairs keep their mapped minutes.
	assert.Equal(t, 8, g.WalkMinutes("Main Gate", "Music Department Hall"))
}

func TestStepFree(t *testing.T) {
	g := DefaultGraph()
	assert.False(t, g.StepFree("Fine Arts Studio 3"), "third floor, no elevator, no ramp")
	assert.True(t, g.StepFree("Music Department Hall"))
	assert.True(t, g.StepFree("Architecture Building, Ground Floor"), "ground floor is step-free")
	assert.True(t, g.StepFree("Unknown Venue"), "unknown venues are not excluded")
}

func TestZone(t *testing.T) {
	g := DefaultGraph()
	assert.Equal(t, "Humanities", g.Zone("Philosophy Building, Room 101"))
	assert.Equal(t, "Unknown", g.Zone("Somewhere Else"))
}

func TestLoadGraph_EmptyPathUsesDefaults(t *testing.T) {
	g, err := LoadGraph("")
	require.NoError(t, err)
	assert.Equal(t, 5, g.WalkMinutes("Library", "Music Department Hall"))
}

func TestLoadGraph_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campus.yaml")
	content := `locations:
  Rooftop Garden:
    zone: Green
    floor: 4
    elevator: true
    ramp: false
    walk_from:
      Library: 2
  Music Department Hall:
    zone: Arts
    floor: 1
    elevator: false
    ramp: false
    walk_from:
      Main Gate: 99
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := LoadGraph(path)
	require.NoError(t, err)

	// New location from file.
	assert.Equal(t, 2, g.WalkMinutes("Library", "Rooftop Garden"))
	assert.Equal(t, "Green", g.Zone("Rooftop Garden"))

	// Overridden default.
	assert.Equal(t, 99, g.WalkMinutes("Main Gate", "Music Department Hall"))
	assert.False(t, g.StepFree("Music Department Hall"))

	// Untouched default survives the merge.
	assert.Equal(t, 3, g.WalkMinutes("Library", "Entrepreneurship Cell"))
}

func TestLoadGraph_MissingFile(t *testing.T) {
	_, err := LoadGraph("/nonexistent/campus.yaml")
	require.Error(t, err)
}
