package cli

import (
	"context"
	"fmt"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/cli/formatter"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/service"
	"github.com/spf13/cobra"
)

func newProfileCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your student profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(a),
		newProfileSetCmd(a),
	)

	return cmd
}

func newProfileShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.Profile.Get(context.Background())
			if err != nil {
				if service.IsNotFound(err) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No profile yet. Create one with: karm profile set --name <you>"))
					return nil
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newProfileSetCmd(a *App) *cobra.Command {
	var name, department string
	var year, budget int
	var freeOnly bool
	var interests, skills, access []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields; only the flags you pass change",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p, err := a.Profile.Get(ctx)
			if err != nil {
				if !service.IsNotFound(err) {
					return err
				}
				p = &domain.StudentProfile{ID: "default"}
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("department") {
				p.Department = department
			}
			if cmd.Flags().Changed("year") {
				p.Year = year
			}
			if cmd.Flags().Changed("interest") {
				p.Interests = interests
			}
			if cmd.Flags().Changed("skill") {
				p.Skills = skills
			}
			if cmd.Flags().Changed("budget") {
				if budget > 0 {
					p.TimeBudgetMin = &budget
				} else {
					p.TimeBudgetMin = nil
				}
			}
			if cmd.Flags().Changed("free-only") {
				p.FreeOnly = freeOnly
			}
			if cmd.Flags().Changed("access") {
				p.Accessibility = nil
				for _, tag := range access {
					p.Accessibility = append(p.Accessibility, domain.AccessibilityTag(tag))
				}
			}

			if err := a.Profile.Save(ctx, p); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&department, "department", "", "Home department")
	cmd.Flags().IntVar(&year, "year", 0, "Year of study")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "Interests (replaces the stored list)")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "Skills (replaces the stored list)")
	cmd.Flags().IntVar(&budget, "budget", 0, "Default time budget in minutes (0 clears it)")
	cmd.Flags().BoolVar(&freeOnly, "free-only", false, "Only ever suggest free events")
	cmd.Flags().StringSliceVar(&access, "access", nil, "Accessibility needs (replaces the stored list)")

	return cmd
}
