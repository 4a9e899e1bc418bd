// Command speedctl is the Sport Speed command line tool.
//
// Usage:
//
//	speedctl sports
//	speedctl sessions "Track & Field" --json
//	speedctl phase 9
//	speedctl plan build Soccer --name Sam --age 15 --experience Advanced --save
//	speedctl plan prune --older-than-days 90
//	speedctl mcp
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/albapepper/sportspeed/internal/catalog"
	"github.com/albapepper/sportspeed/internal/config"
	"github.com/albapepper/sportspeed/internal/mcp"
	"github.com/albapepper/sportspeed/internal/performance"
	"github.com/albapepper/sportspeed/internal/periodization"
	"github.com/albapepper/sportspeed/internal/session"
	"github.com/albapepper/sportspeed/internal/store"
)

// Logs go to stderr: stdout carries command output and the MCP stdio stream.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

var version = "1.0.0"

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "speedctl",
		Short:        "Sport Speed training CLI",
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(sportsCmd())
	root.AddCommand(sessionsCmd())
	root.AddCommand(phaseCmd())
	root.AddCommand(phasesCmd())
	root.AddCommand(performanceCmd())
	root.AddCommand(planCmd())
	root.AddCommand(mcpCmd())
	return root
}

// --------------------------------------------------------------------------
// catalog commands
// --------------------------------------------------------------------------

func sportsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sports",
		Short: "List supported sports and their 16-week program parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, catalog.Sports())
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SPORT\tSEASON\tFOCUS\tBASE VOLUME\tSESSIONS/WEEK")
			for _, s := range catalog.Sports() {
				prog, _ := catalog.ProgramFor(s.Name)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%dm\t%d\n", s.Name, s.Season, s.Focus, prog.BaseVolume, prog.SessionsPerWeek)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func sessionsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sessions <sport>",
		Short: "Generate this week's speed, strength and endurance sessions",
		Long:  "Generate this week's sessions for a sport. Speed distance and reps change on every run. Unknown sports get generic sessions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sport := strings.TrimSpace(args[0])
			if sport == "" {
				return fmt.Errorf("sport is required")
			}
			s := session.Default.All(sport)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, s)
			}
			if !catalog.Known(sport) {
				logger.Warn("Unknown sport, using generic sessions", "sport", sport)
			}
			printSessions(out, s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func printSessions(w io.Writer, s session.Sessions) {
	fmt.Fprintf(w, "%s: this week's sessions\n\n", s.Sport)
	fmt.Fprintf(w, "%s\n  %d x %s, rest %s\n  Focus: %s\n\n",
		s.Speed.Type, s.Speed.Reps, s.Speed.Distance, s.Speed.Rest, s.Speed.Focus)
	fmt.Fprintf(w, "%s\n  %s\n  %s sets x %s reps\n  Focus: %s\n\n",
		s.Strength.Type, strings.Join(s.Strength.Exercises, ", "), s.Strength.Sets, s.Strength.Reps, s.Strength.Focus)
	fmt.Fprintf(w, "%s\n  %s, %s\n  Intensity: %s\n  Focus: %s\n",
		s.Endurance.Type, s.Endurance.Duration, s.Endurance.Activity, s.Endurance.Intensity, s.Endurance.Focus)
}

func phaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phase <week>",
		Short: "Show the periodization phase for a training week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("week must be an integer: %q", args[0])
			}
			p := periodization.PhaseForWeek(week)
			fmt.Fprintf(cmd.OutOrStdout(), "Week %d: %s (%s)\n", week, p.Name, p.Focus)
			return nil
		},
	}
}

func phasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "Print the 16-week periodization table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WEEKS\tPHASE\tFOCUS\tDESCRIPTION")
			for _, b := range periodization.Blocks() {
				fmt.Fprintf(tw, "%d-%d\t%s\t%s\t%s\n", b.StartWeek, b.EndWeek, b.Name, b.Focus, b.Description)
			}
			return tw.Flush()
		},
	}
}

func performanceCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Project weekly sprint times and show average improvement by sport",
		Long:  "Project 40-yard sprint times for weeks 1-16 and list the average speed improvement per sport. The projection adds new noise on every run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := performance.Default.Report()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, r)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WEEK\tSPRINT TIME")
			for _, p := range r.Progression {
				fmt.Fprintf(tw, "%d\t%.2fs\n", p.Week, p.SprintTime)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "SPORT\tAVG IMPROVEMENT")
			for _, imp := range r.Improvements {
				fmt.Fprintf(tw, "%s\t%.1f%%\n", imp.Sport, imp.AvgImprovement)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

// --------------------------------------------------------------------------
// mcp command
// --------------------------------------------------------------------------

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the training tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithStore(func(ctx context.Context, cfg *config.Config, st store.Store) error {
				s := mcp.New(mcp.Deps{
					Store:     st,
					Generator: session.Default,
					Projector: performance.Default,
					Logger:    logger,
					Version:   version,
				})
				logger.Info("MCP server listening on stdio", "plan_store", cfg.PlanStore)
				stdio := server.NewStdioServer(s)
				if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
					return fmt.Errorf("mcp stdio: %w", err)
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runWithStore handles config loading, opening the plan store, and context
// cancellation.
func runWithStore(fn func(ctx context.Context, cfg *config.Config, st store.Store) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open plan store: %w", err)
	}
	defer st.Close()

	return fn(ctx, cfg, st)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
