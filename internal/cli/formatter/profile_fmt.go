package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// FormatProfile formats the student profile for display.
func FormatProfile(p *domain.StudentProfile) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s, year %d\n", Bold("Department:"), StyleFg.Render(p.Department), p.Year))

	if len(p.Interests) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Interests:"), StyleBlue.Render(strings.Join(p.Interests, ", "))))
	}
	if len(p.Skills) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Skills:"), StyleFg.Render(strings.Join(p.Skills, ", "))))
	}

	budget := "unconstrained"
	if p.TimeBudgetMin != nil {
		budget = FormatMinutes(*p.TimeBudgetMin)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Time budget:"), StyleFg.Render(budget)))

	if p.FreeOnly {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Entry:"), StyleGreen.Render("free events only")))
	}
	if len(p.Accessibility) > 0 {
		tags := make([]string, 0, len(p.Accessibility))
		for _, t := range p.Accessibility {
			tags = append(tags, string(t))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Accessibility:"), StylePurple.Render(strings.Join(tags, ", "))))
	}

	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold("Drift:"),
		StyleGreen.Render(fmt.Sprintf("%d pts, streak %d", p.DriftScore, p.DriftStreak)),
	))

	return RenderBox("Profile", b.String())
}
