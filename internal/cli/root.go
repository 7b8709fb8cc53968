package cli

import (
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/spf13/cobra"
)

// App holds references to all use-case interfaces used by CLI commands.
type App struct {
	Recommend  app.RecommendUseCase
	Plan       app.PlanUseCase
	Ask        app.AskUseCase
	Offers     app.OffersUseCase
	Status     app.StatusUseCase
	Visits     app.LogVisitUseCase
	Profile    app.ProfileUseCase
	Activities app.ActivityUseCase

	// IsInteractive reports whether stdin is a terminal; the ask command
	// only starts the chat loop when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "karm" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "karm",
		Short: "Campus activity recommender and day planner",
	}

	root.AddCommand(
		newRecommendCmd(app),
		newPlanCmd(app),
		newAskCmd(app),
		newOffersCmd(app),
		newStatusCmd(app),
		newLogCmd(app),
		newProfileCmd(app),
		newEventsCmd(app),
	)

	return root
}
