package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
)

// FormatLogVisit formats a LogVisitResponse showing the attractor movement
// the visit caused.
func FormatLogVisit(resp *app.LogVisitResponse) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render("Visit logged."))
	b.WriteString("  ")
	b.WriteString(OutcomePill(resp.Visit.Outcome))
	b.WriteString("\n\n")

	if resp.NewDepartment {
		b.WriteString(StylePurple.Render("★ First time in this department!"))
		b.WriteString("\n")
	}

	deltaStyle := StyleDim
	deltaLabel := "no change"
	if resp.BubbleDelta < 0 {
		deltaStyle = StyleGreen
		deltaLabel = fmt.Sprintf("%.1f pts", resp.BubbleDelta)
	} else if resp.BubbleDelta > 0 {
		deltaStyle = StyleYellow
		deltaLabel = fmt.Sprintf("+%.1f pts", resp.BubbleDelta)
	}

	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Bold("Bubble:"),
		RenderBubbleBar(resp.BubblePct, statusBarWidth),
		deltaStyle.Render(deltaLabel),
	))

	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold("Drift:"),
		StyleGreen.Render(fmt.Sprintf("%d pts", resp.DriftScore)),
	))

	if resp.Visit.NewConnections > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d new connections recorded", resp.Visit.NewConnections)) + "\n")
	}

	return b.String()
}
