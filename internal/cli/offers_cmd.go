package cli

import (
	"context"
	"fmt"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOffersCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "offers",
		Short: "Show open discovery-slot invitations ranked for you",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Offers.RankOffers(context.Background(), limit)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOffers(resp))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Maximum number of offers")

	return cmd
}
