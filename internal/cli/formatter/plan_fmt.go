package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
)

// FormatPlan formats a PlanResponse into a styled itinerary with walking
// segments, totals, and the exclusion trail.
func FormatPlan(resp *app.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Your itinerary"))
	b.WriteString("\n\n")

	if resp.EmptyMessage != "" {
		b.WriteString(Dim(resp.EmptyMessage))
		b.WriteString("\n")
		writeExclusions(&b, resp.Exclusions)
		return RenderBox("Day Plan", b.String())
	}

	for i, stop := range resp.Stops {
		if stop.WalkMin > 0 {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(fmt.Sprintf("↓ walk %s", FormatMinutes(stop.WalkMin)))))
		}

		a := stop.Activity
		titleLine := fmt.Sprintf(
			"%s %s  %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(a.Title),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(a.DurationMin))),
			ScoreBadge(stop.Score),
		)
		b.WriteString(titleLine + "\n")

		detail := fmt.Sprintf("%s · %s", a.Location, a.StartTime.Format("Mon 15:04"))
		if stop.Zone != "" {
			detail += fmt.Sprintf(" · %s zone", stop.Zone)
		}
		b.WriteString(fmt.Sprintf("   %s", Dim(detail)))
		if stop.Accessible {
			b.WriteString("  " + StyleGreen.Render("♿ step-free"))
		}
		b.WriteString("\n")

		for _, r := range stop.Reasons {
			b.WriteString(formatReasonLine(r))
		}

		if i < len(resp.Stops)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	summaryLine := fmt.Sprintf(
		"%s  %s  %s  %s  %s",
		StyleGreen.Render(fmt.Sprintf("Events: %s", FormatMinutes(resp.TotalEventMin))),
		StyleDim.Render("|"),
		StyleFg.Render(fmt.Sprintf("Walking: %s", FormatMinutes(resp.TotalWalkMin))),
		StyleDim.Render("|"),
		costLabel(resp.EstimatedCost),
	)
	b.WriteString(summaryLine + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d candidates considered", resp.CandidatesConsidered)) + "\n")

	writeExclusions(&b, resp.Exclusions)

	return RenderBox("Day Plan", b.String())
}

func costLabel(cost int) string {
	if cost == 0 {
		return StyleGreen.Render("Cost: free")
	}
	return StyleYellow.Render(fmt.Sprintf("Cost: ~₹%d", cost))
}

// writeExclusions appends the dropped-candidate trail, one dim line each.
func writeExclusions(b *strings.Builder, exclusions []app.Exclusion) {
	if len(exclusions) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(Dim("Left out:") + "\n")
	for _, ex := range exclusions {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleYellow.Render("⊘"),
			Dim(fmt.Sprintf("%s: %s", ex.Title, ex.Message)),
		))
	}
}
