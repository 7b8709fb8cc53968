package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
)

const statusBarWidth = 10

// FormatStatus formats a StatusResponse into the bubble dashboard.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder

	b.WriteString(Header("Your bubble"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Bubble:"), RenderBubbleBar(resp.BubblePct, statusBarWidth)))
	b.WriteString("\n")

	headers := []string{"DIMENSION", "COVERAGE"}
	rows := [][]string{
		{"Departments", StyleFg.Render(resp.DepartmentsRatio)},
		{"Canteen variety", RenderProgress(resp.CanteenVariety/100, statusBarWidth)},
		{"Event diversity", RenderProgress(resp.EventDiversity/100, statusBarWidth)},
		{"Connections", StyleFg.Render(fmt.Sprintf("%d", resp.Connections))},
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	driftLine := fmt.Sprintf(
		"%s  %s  %s",
		StyleGreen.Render(fmt.Sprintf("Drift: %d pts", resp.DriftScore)),
		StyleDim.Render("|"),
		StyleFg.Render(fmt.Sprintf("Streak: %d", resp.DriftStreak)),
	)
	b.WriteString(driftLine + "\n")

	if len(resp.Unexplored) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Unexplored territory") + "\n")
		for _, area := range resp.Unexplored {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("◆"), StyleFg.Render(area.Name)))
			b.WriteString(fmt.Sprintf("    %s\n", Dim(area.Nudge)))
		}
	}

	return RenderBox("Campus Status", b.String())
}
