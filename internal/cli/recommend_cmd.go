package cli

import (
	"context"
	"fmt"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRecommendCmd(a *App) *cobra.Command {
	var limit int
	var includePast bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank upcoming events by relevance to your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewRecommendRequest()
			if cmd.Flags().Changed("limit") {
				req.Limit = limit
			}
			if includePast {
				req.UpcomingOnly = false
			}

			resp, err := a.Recommend.Rank(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommend(resp))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of recommendations")
	cmd.Flags().BoolVar(&includePast, "all", false, "Include events that already started")

	return cmd
}
