package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/campus"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/service"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	activityRepo := repository.NewSQLiteActivityRepo(database)
	slotRepo := repository.NewSQLiteDiscoverySlotRepo(database)
	profileRepo := repository.NewSQLiteStudentProfileRepo(database)
	attractorRepo := repository.NewSQLiteAttractorRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Recommend:  service.NewRecommendService(activityRepo, profileRepo, attractorRepo, service.Tunables{}),
		Plan:       service.NewPlanService(activityRepo, profileRepo, attractorRepo, campus.DefaultGraph(), service.Tunables{}),
		Ask:        service.NewAskService(activityRepo, profileRepo, attractorRepo, service.Tunables{}),
		Offers:     service.NewOfferService(slotRepo, profileRepo, attractorRepo),
		Status:     service.NewStatusService(profileRepo, attractorRepo),
		Visits:     service.NewVisitService(activityRepo, profileRepo, attractorRepo, uow),
		Profile:    service.NewProfileService(profileRepo),
		Activities: service.NewActivityService(activityRepo, uow),
	}
}

// seedEvent adds one upcoming activity and returns its ID.
func seedEvent(t *testing.T, a *App, title string) string {
	t.Helper()
	activity := testutil.NewTestActivity(title,
		testutil.WithStartTime(time.Now().UTC().Add(4*time.Hour)),
	)
	require.NoError(t, a.Activities.Add(context.Background(), activity))
	return activity.ID
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	a := testApp(t)

	output, err := executeCmd(t, a)
	require.NoError(t, err)
	assert.Contains(t, output, "karm")
}

func TestRecommendCmd_WithData(t *testing.T) {
	a := testApp(t)
	seedEvent(t, a, "Pottery Taster")

	output, err := executeCmd(t, a, "recommend")
	require.NoError(t, err)
	assert.Contains(t, output, "Pottery Taster")
}

func TestRecommendCmd_EmptyCatalog(t *testing.T) {
	a := testApp(t)

	output, err := executeCmd(t, a, "recommend")
	require.NoError(t, err)
	assert.Contains(t, output, "relaxing your constraints")
}

func TestPlanCmd_WithBudget(t *testing.T) {
	a := testApp(t)
	seedEvent(t, a, "Physics Demo")

	output, err := executeCmd(t, a, "plan", "--minutes", "180")
	require.NoError(t, err)
	assert.Contains(t, output, "Physics Demo")
}

func TestAskCmd_OneShot(t *testing.T) {
	a := testApp(t)
	seedEvent(t, a, "Chess Corner")

	output, err := executeCmd(t, a, "ask", "something today")
	require.NoError(t, err)
	assert.Contains(t, output, "Chess Corner")
}

func TestAskCmd_NoQueryNonInteractive(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "ask")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no query given")
}

func TestStatusCmd(t *testing.T) {
	a := testApp(t)

	output, err := executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, output, "0 of 14")
}

func TestLogCmd_MovesBubble(t *testing.T) {
	a := testApp(t)
	id := seedEvent(t, a, "Improv Open Hour")

	output, err := executeCmd(t, a, "log", id, "--connections", "2")
	require.NoError(t, err)
	assert.Contains(t, output, "Visit logged.")
	assert.Contains(t, output, "First time in this department!")
}

func TestLogCmd_UnknownActivity(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "log", "nope")
	assert.Error(t, err)
}

func TestProfileCmd_SetThenShow(t *testing.T) {
	a := testApp(t)

	output, err := executeCmd(t, a, "profile", "set",
		"--name", "Asha",
		"--department", "Computer Science",
		"--interest", "music,robotics",
		"--budget", "90",
	)
	require.NoError(t, err)
	assert.Contains(t, output, "Asha")
	assert.Contains(t, output, "music, robotics")
	assert.Contains(t, output, "1h 30m")

	output, err = executeCmd(t, a, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "Computer Science")
}

func TestProfileCmd_ShowWithoutProfile(t *testing.T) {
	a := testApp(t)

	output, err := executeCmd(t, a, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "No profile yet")
}

func TestEventsCmd_AddAndList(t *testing.T) {
	a := testApp(t)

	start := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)
	output, err := executeCmd(t, a, "events", "add", "Robotics Demo",
		"--category", "workshop",
		"--start", start,
		"--duration", "45",
	)
	require.NoError(t, err)
	assert.Contains(t, output, "Added \"Robotics Demo\"")

	output, err = executeCmd(t, a, "events", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Robotics Demo")
}

func TestEventsCmd_AddRejectsBadStart(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "events", "add", "Bad", "--start", "tomorrow")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --start")
}

func TestOffersCmd_Empty(t *testing.T) {
	a := testApp(t)

	output, err := executeCmd(t, a, "offers")
	require.NoError(t, err)
	assert.Contains(t, output, "No open invitations")
}
