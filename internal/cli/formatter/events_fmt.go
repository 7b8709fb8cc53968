package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// FormatActivityList formats the raw activity catalog as a table.
func FormatActivityList(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return Dim("No events in the catalog. Import a feed with: karm events import <file>") + "\n"
	}

	headers := []string{"ID", "TITLE", "CATEGORY", "WHEN", "LENGTH", "ENTRY", "LOCATION"}
	rows := make([][]string, 0, len(activities))

	for _, a := range activities {
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(a.Title),
			CategoryBadge(a.Category),
			StyleFg.Render(a.StartTime.Format("Jan 2 15:04")),
			StyleBlue.Render(FormatMinutes(a.DurationMin)),
			FreePill(a.IsFree),
			Dim(a.Location),
		})
	}

	return RenderTable(headers, rows)
}

// FormatImportResult summarizes a feed import with its warnings.
func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render(fmt.Sprintf("Imported %d entries", res.Imported)))
	if res.Skipped > 0 {
		b.WriteString("  ")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("(%d skipped)", res.Skipped)))
	}
	b.WriteString("\n")

	for _, w := range res.Warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}

	return b.String()
}
