package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/spf13/cobra"
)

func newEventsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage the event catalog",
	}

	cmd.AddCommand(
		newEventsListCmd(a),
		newEventsAddCmd(a),
		newEventsImportCmd(a),
	)

	return cmd
}

func newEventsListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := a.Activities.List(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityList(activities))
			return nil
		},
	}
}

func newEventsAddCmd(a *App) *cobra.Command {
	var department, category, location, start string
	var duration int
	var paid, discovery bool
	var attendees []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a single event to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("invalid --start (want RFC3339, e.g. 2026-09-05T17:00:00Z): %w", err)
			}
			if duration <= 0 {
				return fmt.Errorf("--duration must be positive")
			}

			activity := &domain.Activity{
				Title:               args[0],
				Department:          department,
				Category:            domain.NormalizeCategory(category),
				Location:            location,
				StartTime:           startTime,
				DurationMin:         duration,
				IsFree:              !paid,
				AttendeeDepartments: attendees,
				DiscoverySlot:       discovery,
			}

			if err := a.Activities.Add(context.Background(), activity); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", activity.Title, activity.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Organizing department")
	cmd.Flags().StringVar(&category, "category", "other", "Category: talk, workshop, social, performance, sports, other")
	cmd.Flags().StringVar(&location, "location", "", "Campus location")
	cmd.Flags().StringVar(&start, "start", "", "Start time (RFC3339)")
	cmd.Flags().IntVar(&duration, "duration", 60, "Duration in minutes")
	cmd.Flags().BoolVar(&paid, "paid", false, "Mark as paid entry")
	cmd.Flags().BoolVar(&discovery, "discovery", false, "Mark as a discovery slot")
	cmd.Flags().StringSliceVar(&attendees, "attendees", nil, "Departments expected to attend")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newEventsImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <feed.json>",
		Short: "Import events and discovery slots from a JSON feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Activities.ImportFeed(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
