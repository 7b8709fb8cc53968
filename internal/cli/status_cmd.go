package cli

import (
	"context"
	"fmt"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your bubble percentage and exploration dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.Status(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
