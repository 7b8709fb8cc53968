package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
)

// FormatRecommend formats a RecommendResponse into a styled ranked feed.
func FormatRecommend(resp *app.RecommendResponse) string {
	var b strings.Builder

	b.WriteString(Header("Recommended for you"))
	b.WriteString("\n\n")

	if resp.EmptyMessage != "" {
		b.WriteString(Dim(resp.EmptyMessage))
		b.WriteString("\n")
		return RenderBox("Recommendations", b.String())
	}

	for i, item := range resp.Items {
		b.WriteString(formatRankedActivity(i+1, item))
		if i < len(resp.Items)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d candidates considered", resp.CandidatesConsidered)))
	b.WriteString("\n")

	return RenderBox("Recommendations", b.String())
}

// formatRankedActivity renders one scored entry with its reason lines.
func formatRankedActivity(num int, item app.RankedActivity) string {
	var b strings.Builder
	a := item.Activity

	titleLine := fmt.Sprintf(
		"%s %s  %s  %s",
		Bold(fmt.Sprintf("%d.", num)),
		StyleFg.Render(a.Title),
		ScoreBadge(item.Score),
		CategoryBadge(a.Category),
	)
	b.WriteString(titleLine + "\n")

	detail := fmt.Sprintf("%s · %s · %s · %s",
		a.Department,
		a.Location,
		a.StartTime.Format("Mon 15:04"),
		FormatMinutes(a.DurationMin),
	)
	b.WriteString(fmt.Sprintf("   %s  %s\n", Dim(detail), FreePill(a.IsFree)))

	for _, r := range item.Reasons {
		b.WriteString(formatReasonLine(r))
	}

	return b.String()
}

// formatReasonLine renders a single reason with its score delta when present.
func formatReasonLine(r app.Reason) string {
	msg := r.Message
	if r.WeightDelta != nil {
		msg = fmt.Sprintf("%s (%+.0f)", msg, *r.WeightDelta)
	}
	return fmt.Sprintf("   %s %s\n", StyleYellow.Render("WHY:"), Dim(msg))
}
