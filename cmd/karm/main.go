package main

import (
	"fmt"
	"os"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/campus"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/config"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Campus map: built-in graph unless a custom one is configured.
	graph := campus.DefaultGraph()
	if cfg.CampusGraphPath != "" {
		graph, err = campus.LoadGraph(cfg.CampusGraphPath)
		if err != nil {
			return fmt.Errorf("loading campus graph: %w", err)
		}
	}
	graph.DefaultWalkMin = cfg.DefaultWalkMin

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	activityRepo := repository.NewSQLiteActivityRepo(database)
	slotRepo := repository.NewSQLiteDiscoverySlotRepo(database)
	profileRepo := repository.NewSQLiteStudentProfileRepo(database)
	attractorRepo := repository.NewSQLiteAttractorRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case tracing goes to stderr only when explicitly asked for.
	var observers []service.UseCaseObserver
	if os.Getenv("KARM_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	tun := service.Tunables{
		CostUnit:       cfg.CostUnit,
		ScoreBudgetMin: cfg.ScoreBudgetMin,
		ChatBudgetMin:  cfg.ChatBudgetMin,
		ChatLimit:      cfg.ChatLimit,
		Strategy:       cfg.Strategy,
	}

	app := &cli.App{
		Recommend:  service.NewRecommendService(activityRepo, profileRepo, attractorRepo, tun),
		Plan:       service.NewPlanService(activityRepo, profileRepo, attractorRepo, graph, tun),
		Ask:        service.NewAskService(activityRepo, profileRepo, attractorRepo, tun),
		Offers:     service.NewOfferService(slotRepo, profileRepo, attractorRepo),
		Status:     service.NewStatusService(profileRepo, attractorRepo),
		Visits:     service.NewVisitService(activityRepo, profileRepo, attractorRepo, uow, observers...),
		Profile:    service.NewProfileService(profileRepo),
		Activities: service.NewActivityService(activityRepo, uow, observers...),
	}

	// Detect interactive terminal for the chat entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
