package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
)

// karmHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func karmHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planAnswers holds the values collected by the plan wizard.
type planAnswers struct {
	minutes   int
	freeOnly  bool
	start     string
	strategy  string
	interests []string
}

// validatePositiveInt rejects inputs that are not positive integers.
// Blank is allowed so optional fields can be skipped.
func validatePositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number of minutes")
	}
	return nil
}

// runPlanWizard collects itinerary constraints through a guided huh form.
func runPlanWizard() (planAnswers, error) {
	var minutesStr, start, strategy, interestsStr string
	var freeOnly bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How much time do you have? (minutes, blank for unbounded)").
				Placeholder("120").
				Value(&minutesStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Where are you starting from?").
				Placeholder("Main Gate").
				Value(&start),
			huh.NewConfirm().
				Title("Free events only?").
				Value(&freeOnly),
			huh.NewSelect[string]().
				Title("Selection strategy").
				Options(
					huh.NewOption("Greedy (fast, good enough)", "greedy"),
					huh.NewOption("Exact (best score, small catalogs)", "exact"),
				).
				Value(&strategy),
			huh.NewInput().
				Title("Interests for this plan (comma separated, blank to use profile)").
				Placeholder("music, robotics").
				Value(&interestsStr),
		),
	).WithTheme(karmHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return planAnswers{}, err
	}

	answers := planAnswers{freeOnly: freeOnly, strategy: strategy}
	if s := strings.TrimSpace(minutesStr); s != "" {
		answers.minutes, _ = strconv.Atoi(s)
	}
	answers.start = strings.TrimSpace(start)
	if answers.start == "" {
		answers.start = "Main Gate"
	}
	answers.interests = splitCSV(interestsStr)
	return answers, nil
}

// splitCSV splits a comma separated input into trimmed, non-empty parts.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
