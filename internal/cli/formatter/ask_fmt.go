package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
)

// FormatAsk formats an AskResponse into a compact conversational answer.
func FormatAsk(resp *app.AskResponse) string {
	var b strings.Builder

	if resp.EmptyMessage != "" {
		b.WriteString(Dim(resp.EmptyMessage))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StylePurple.Render(resp.Explanation))
	b.WriteString("\n\n")

	for i, m := range resp.Matches {
		a := m.Activity
		titleLine := fmt.Sprintf(
			"%s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(a.Title),
			ScoreBadge(m.Score),
		)
		b.WriteString(titleLine + "\n")

		detail := fmt.Sprintf("%s · %s · %s",
			a.Location,
			a.StartTime.Format("Mon 15:04"),
			FormatMinutes(a.DurationMin),
		)
		b.WriteString(fmt.Sprintf("   %s  %s\n", Dim(detail), FreePill(a.IsFree)))

		// Only the most salient reason on the conversational surface.
		if len(m.Reasons) > 0 {
			b.WriteString(formatReasonLine(m.Reasons[0]))
		}

		if i < len(resp.Matches)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
