package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/albapepper/sportspeed/internal/config"
	"github.com/albapepper/sportspeed/internal/maintenance"
	"github.com/albapepper/sportspeed/internal/plan"
	"github.com/albapepper/sportspeed/internal/store"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and manage 16-week plans",
	}
	cmd.AddCommand(planBuildCmd())
	cmd.AddCommand(planListCmd())
	cmd.AddCommand(planShowCmd())
	cmd.AddCommand(planDeleteCmd())
	cmd.AddCommand(planPruneCmd())
	return cmd
}

func planBuildCmd() *cobra.Command {
	var (
		athlete plan.Athlete
		save    bool
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "build <sport>",
		Short: "Build a 16-week periodized plan for an athlete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.Build(args[0], athlete)
			if err != nil {
				return err
			}
			if save {
				err := runWithStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
					if err := st.Save(ctx, p); err != nil {
						return fmt.Errorf("save plan: %w", err)
					}
					logger.Info("Plan saved", "plan_id", p.ID, "sport", p.Sport, "plan_store", cfg.PlanStore)
					return nil
				})
				if err != nil {
					return err
				}
			}
			return printPlan(cmd.OutOrStdout(), p, asJSON)
		},
	}
	cmd.Flags().StringVar(&athlete.Name, "name", "", "Athlete name (default \"Athlete\")")
	cmd.Flags().IntVar(&athlete.Age, "age", plan.DefaultAge, "Athlete age (14-18)")
	cmd.Flags().StringVar(&athlete.Position, "position", "", "Playing position")
	cmd.Flags().StringVar(&athlete.Experience, "experience", plan.Beginner, "Beginner, Intermediate or Advanced")
	cmd.Flags().BoolVar(&save, "save", false, "Store the plan in plan history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func planListCmd() *cobra.Command {
	var f store.Filter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				plans, err := st.List(ctx, f.Normalize())
				if err != nil {
					return fmt.Errorf("list plans: %w", err)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tSPORT\tATHLETE\tEXPERIENCE\tCREATED")
				for _, p := range plans {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
						p.ID, p.Sport, p.Athlete.Name, p.Athlete.Experience, p.CreatedAt.Local().Format(time.DateTime))
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&f.Limit, "limit", store.DefaultLimit, "Maximum plans to list (max 100)")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "Plans to skip")
	cmd.Flags().StringVar(&f.Sport, "sport", "", "Only plans for this sport")
	return cmd
}

func planShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				p, err := st.Get(ctx, args[0])
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("plan %s not found", args[0])
				}
				if err != nil {
					return fmt.Errorf("get plan: %w", err)
				}
				return printPlan(cmd.OutOrStdout(), p, asJSON)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func planDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				err := st.Delete(ctx, args[0])
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("plan %s not found", args[0])
				}
				if err != nil {
					return fmt.Errorf("delete plan: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
				return nil
			})
		},
	}
}

func planPruneCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete plans older than a number of days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				retention := cfg.PlanRetention
				if cmd.Flags().Changed("older-than-days") {
					if days <= 0 {
						return fmt.Errorf("--older-than-days must be positive")
					}
					retention = time.Duration(days) * 24 * time.Hour
				}
				if retention <= 0 {
					return fmt.Errorf("plan retention is disabled; pass --older-than-days")
				}
				n, err := maintenance.Prune(ctx, st, nil, retention, time.Now(), logger)
				if errors.Is(err, store.ErrDisabled) {
					return fmt.Errorf("plan storage is disabled (PLAN_STORE=%s)", cfg.PlanStore)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d plan(s)\n", n)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "older-than-days", 0, "Age in days (default PLAN_RETENTION_DAYS)")
	return cmd
}

func printPlan(w io.Writer, p *plan.Plan, asJSON bool) error {
	if asJSON {
		return writeJSON(w, p)
	}
	a := p.Athlete
	fmt.Fprintf(w, "%s: 16-week %s plan for %s (age %d, %s)\n", p.Method, p.Sport, a.Name, a.Age, a.Experience)
	if a.Position != "" {
		fmt.Fprintf(w, "Position: %s\n", a.Position)
	}
	fmt.Fprintf(w, "Program: %s, %dm base volume, %d sessions/week\n", p.Program.Focus, p.Program.BaseVolume, p.Program.SessionsPerWeek)
	fmt.Fprintf(w, "ID: %s\n\n", p.ID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WEEK\tPHASE\tINTENSITY\tVOLUME")
	for _, wk := range p.Weeks {
		fmt.Fprintf(tw, "%d\t%s\t%.1f%%\t%dm\n", wk.Week, wk.Phase, wk.Intensity, wk.Volume)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "WEEKS\tPHASE\tAVG INTENSITY\tTOTAL VOLUME")
	for _, ph := range p.Phases {
		fmt.Fprintf(tw, "%d-%d\t%s\t%.1f%%\t%dm\n", ph.StartWeek, ph.EndWeek, ph.Name, ph.AverageIntensity, ph.TotalVolume)
	}
	return tw.Flush()
}
