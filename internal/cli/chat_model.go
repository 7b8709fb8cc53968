package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
)

// chatModel is the bubbletea Model for the interactive ask loop.
type chatModel struct {
	input    textinput.Model
	app      *App
	width    int
	quitting bool
}

func newChatModel(a *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "something free and short tonight"
	ti.CharLimit = 200

	return chatModel{input: ti, app: a}
}

func chatWelcome() string {
	return formatter.Header("KarmBot") + "\n" +
		formatter.Dim("Ask for events in plain language. Type \"exit\" to leave.") + "\n"
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(chatWelcome()),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if query == "" {
				return m, nil
			}
			if query == "exit" || query == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, tea.Println(m.answer(query))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("See you around campus.") + "\n"
	}
	return m.promptPrefix() + m.input.View()
}

func (m *chatModel) promptPrefix() string {
	return formatter.StylePurple.Render("karm") + " " + formatter.Dim("❯") + " "
}

// answer runs one query through the ask use case and renders the reply.
func (m *chatModel) answer(query string) string {
	echo := m.promptPrefix() + formatter.Bold(query)

	resp, err := m.app.Ask.Ask(context.Background(), app.NewAskRequest(query))
	if err != nil {
		return echo + "\n" + formatter.StyleRed.Render("Error: "+err.Error())
	}
	return echo + "\n" + formatter.FormatAsk(resp)
}

// runAskChat starts the interactive chat loop.
func runAskChat(a *App) error {
	p := tea.NewProgram(newChatModel(a))
	_, err := p.Run()
	return err
}
