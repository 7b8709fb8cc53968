package cli

import (
	"context"
	"fmt"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	var minutes int
	var freeOnly bool
	var start string
	var strategy string
	var access []string
	var interests []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a walking-aware itinerary within a minutes budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				answers, err := runPlanWizard()
				if err != nil {
					return err
				}
				minutes = answers.minutes
				freeOnly = answers.freeOnly
				start = answers.start
				strategy = answers.strategy
				interests = answers.interests
			}

			req := app.PlanRequest{
				FreeOnly:      freeOnly,
				StartLocation: start,
				Strategy:      strategy,
				Interests:     interests,
			}
			if minutes > 0 {
				req.MaxTotalMin = &minutes
			}
			for _, tag := range access {
				req.Accessibility = append(req.Accessibility, domain.AccessibilityTag(tag))
			}

			resp, err := a.Plan.Plan(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Total budget for events plus walking (0 for unbounded)")
	cmd.Flags().BoolVar(&freeOnly, "free", false, "Only include free events")
	cmd.Flags().StringVar(&start, "start", "Main Gate", "Starting location on campus")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Selection strategy: greedy or exact")
	cmd.Flags().StringSliceVar(&access, "access", nil, "Accessibility needs (wheelchair, elevator, visual, sensory)")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "Interests overriding the stored profile for this plan")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in constraints through a guided form")

	return cmd
}
