package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   `ask ["<natural language>"]`,
		Short: "Ask for events in plain language",
		Long: `Match a plain-language query like "something free and short tonight"
against the event catalog. With no argument and an interactive terminal,
starts a chat loop.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if a.IsInteractive != nil && a.IsInteractive() {
					return runAskChat(a)
				}
				return fmt.Errorf("no query given; try: karm ask \"something free tonight\"")
			}

			query := strings.TrimSpace(args[0])
			req := app.NewAskRequest(query)
			if cmd.Flags().Changed("limit") {
				req.Limit = limit
			}

			resp, err := a.Ask.Ask(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAsk(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 3, "Maximum number of matches")

	return cmd
}
