package cli

import (
	"testing"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/teatest"
	"github.com/stretchr/testify/assert"
)

func newChatDriver(t *testing.T, a *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newChatModel(a), teatest.WithSize(80, 24))
	d.DrainInit()
	return d
}

func TestChatModel_WelcomeAndPrompt(t *testing.T) {
	a := testApp(t)
	d := newChatDriver(t, a)

	assert.Contains(t, d.Printed.String(), "KARMBOT")
	assert.Contains(t, d.View(), "❯")
}

func TestChatModel_AnswersQuery(t *testing.T) {
	a := testApp(t)
	seedEvent(t, a, "Pottery Taster")
	d := newChatDriver(t, a)

	d.Type("something today")
	d.PressEnter()

	assert.Contains(t, d.Printed.String(), "Pottery Taster")
	assert.False(t, d.Quitting)
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	a := testApp(t)
	d := newChatDriver(t, a)

	before := d.Printed.String()
	d.PressEnter()
	assert.Equal(t, before, d.Printed.String())
}

func TestChatModel_ExitWord(t *testing.T) {
	a := testApp(t)
	d := newChatDriver(t, a)

	d.Type("exit")
	d.PressEnter()

	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "See you around campus.")
}

func TestChatModel_CtrlCQuits(t *testing.T) {
	a := testApp(t)
	d := newChatDriver(t, a)

	d.PressCtrlC()
	assert.True(t, d.Quitting)
}
