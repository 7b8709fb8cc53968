package formatter

import (
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
)

// FormatOffers formats an OffersResponse into a styled invitation list.
func FormatOffers(resp *app.OffersResponse) string {
	var b strings.Builder

	b.WriteString(Header("Open invitations"))
	b.WriteString("\n\n")

	if resp.EmptyMessage != "" {
		b.WriteString(Dim(resp.EmptyMessage))
		b.WriteString("\n")
		return RenderBox("Discovery Slots", b.String())
	}

	for i, o := range resp.Offers {
		offer := o.Offer
		titleLine := fmt.Sprintf(
			"%s %s  %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(offer.Name),
			ScoreBadge(o.Score),
			StylePurple.Render(strings.ToUpper(string(offer.OrganizerType))),
		)
		b.WriteString(titleLine + "\n")

		if offer.Location != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(offer.Location)))
		}
		if offer.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(offer.Description)))
		}
		if len(offer.Tags) > 0 {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Tags:"), StyleBlue.Render(strings.Join(offer.Tags, ", "))))
		}
		if len(offer.AvailableTimes) > 0 {
			times := make([]string, 0, len(offer.AvailableTimes))
			for _, t := range offer.AvailableTimes {
				times = append(times, t.Format("Mon 15:04"))
			}
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("When:"), StyleFg.Render(strings.Join(times, ", "))))
		}

		for _, r := range o.Reasons {
			b.WriteString(formatReasonLine(r))
		}

		if i < len(resp.Offers)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Discovery Slots", b.String())
}
