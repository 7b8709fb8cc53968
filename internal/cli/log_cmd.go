package cli

import (
	"context"
	"fmt"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(a *App) *cobra.Command {
	var outcome string
	var connections int
	var note string

	cmd := &cobra.Command{
		Use:   "log <activity-id>",
		Short: "Log an attended event and see how your bubble moved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.LogVisitRequest{
				ActivityID:     args[0],
				Outcome:        domain.VisitOutcome(outcome),
				NewConnections: connections,
				Note:           note,
			}

			resp, err := a.Visits.LogVisit(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLogVisit(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&outcome, "outcome", "attended", "Visit outcome: attended, skipped, or interesting")
	cmd.Flags().IntVar(&connections, "connections", 0, "New connections made at the event")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note about the visit")

	return cmd
}
