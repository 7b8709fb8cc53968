package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreColor returns the lipgloss style corresponding to a 0-100 relevance score.
func ScoreColor(score float64) lipgloss.Style {
	switch {
	case score >= 70:
		return StyleGreen
	case score >= 40:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ScoreBadge returns a colored score string such as "★ 82".
func ScoreBadge(score float64) string {
	return ScoreColor(score).Render(fmt.Sprintf("★ %.0f", score))
}

// CategoryBadge returns a capitalized, purple-styled category label.
func CategoryBadge(c domain.ActivityCategory) string {
	s := string(c)
	if s == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// FreePill returns a colored entry-cost indicator.
func FreePill(isFree bool) string {
	if isFree {
		return StyleGreen.Render("● Free")
	}
	return StyleYellow.Render("○ Paid")
}

// OutcomePill returns a colored indicator for a visit outcome.
func OutcomePill(o domain.VisitOutcome) string {
	switch o {
	case domain.OutcomeAttended:
		return StyleGreen.Render("✔ Attended")
	case domain.OutcomeInteresting:
		return StylePurple.Render("★ Interesting")
	case domain.OutcomeSkipped:
		return StyleDim.Render("⊘ Skipped")
	case domain.OutcomePending:
		return StyleBlue.Render("○ Pending")
	default:
		return StyleDim.Render(string(o))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
