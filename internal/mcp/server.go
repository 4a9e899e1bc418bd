// Package mcp exposes the speed training catalog, session generators,
// periodization table and plan builder as MCP tools for AI assistants.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/albapepper/sportspeed/internal/catalog"
	"github.com/albapepper/sportspeed/internal/performance"
	"github.com/albapepper/sportspeed/internal/periodization"
	"github.com/albapepper/sportspeed/internal/plan"
	"github.com/albapepper/sportspeed/internal/session"
	"github.com/albapepper/sportspeed/internal/store"
)

// CatalogURI is the resource holding sports, programs and the phase table.
const CatalogURI = "speed://catalog"

// Deps are the MCP server dependencies. Store may be nil (plans are never
// saved); Generator and Projector may be nil (global random source).
type Deps struct {
	Store     store.Store
	Generator *session.Generator
	Projector *performance.Projector
	Logger    *slog.Logger
	Version   string
}

// New creates an MCP server with all tools and resources registered.
func New(deps Deps) *server.MCPServer {
	if deps.Store == nil {
		deps.Store = store.Disabled{}
	}
	if deps.Generator == nil {
		deps.Generator = session.Default
	}
	if deps.Projector == nil {
		deps.Projector = performance.Default
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Version == "" {
		deps.Version = "1.0.0"
	}

	s := server.NewMCPServer(
		"sportspeed",
		deps.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("High school speed training: sport catalog, weekly speed/strength/endurance sessions, the 16-week periodization table, and 16-week plan building."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("list_sports",
			mcp.WithDescription("List the supported sports with season, focus and 16-week program parameters."),
		),
		toolListSports(),
	)

	s.AddTool(
		mcp.NewTool("generate_sessions",
			mcp.WithDescription("Generate this week's speed, strength and endurance sessions for a sport. Speed distance and reps are random on every call. Unknown sports get generic sessions."),
			mcp.WithString("sport", mcp.Required(), mcp.Description("Sport name, e.g. Soccer or Track & Field")),
		),
		toolGenerateSessions(deps),
	)

	s.AddTool(
		mcp.NewTool("get_phase",
			mcp.WithDescription("Return the periodization phase (name and focus) for a week of the 16-week program."),
			mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number, 1-16")),
		),
		toolGetPhase(),
	)

	s.AddTool(
		mcp.NewTool("build_plan",
			mcp.WithDescription("Build a 16-week periodized speed plan for an athlete: weekly intensity and volume plus a per-phase breakdown."),
			mcp.WithString("sport", mcp.Required(), mcp.Description("Sport name")),
			mcp.WithString("name", mcp.Description("Athlete name (default \"Athlete\")")),
			mcp.WithNumber("age", mcp.Description("Athlete age, 14-18 (default 16)")),
			mcp.WithString("position", mcp.Description("Playing position")),
			mcp.WithString("experience", mcp.Description("Training experience"), mcp.Enum(plan.Beginner, plan.Intermediate, plan.Advanced)),
			mcp.WithBoolean("save", mcp.Description("Store the plan in plan history (default false)")),
		),
		toolBuildPlan(deps),
	)

	s.AddTool(
		mcp.NewTool("list_plans",
			mcp.WithDescription("List stored plans, newest first."),
			mcp.WithNumber("limit", mcp.Description("Maximum number of plans (default 20, max 100)")),
			mcp.WithString("sport", mcp.Description("Only plans for this sport")),
		),
		toolListPlans(deps),
	)

	s.AddTool(
		mcp.NewTool("get_performance",
			mcp.WithDescription("Projected 40-yard sprint times for weeks 1-16 (new noise on every call) and the average speed improvement by sport. Pass sport to get only that sport's improvement."),
			mcp.WithString("sport", mcp.Description("Only this sport's average improvement")),
		),
		toolGetPerformance(deps),
	)

	s.AddResource(
		mcp.NewResource(
			CatalogURI,
			"Speed Training Catalog",
			mcp.WithResourceDescription("Sports, program parameters and the four-block periodization table as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		resourceCatalog(),
	)

	return s
}

// CatalogDocument is the body of the catalog resource.
type CatalogDocument struct {
	Sports []SportEntry          `json:"sports"`
	Phases []periodization.Block `json:"phases"`
	Weeks  int                   `json:"total_weeks"`
	Method string                `json:"method"`
}

// SportEntry is one sport with its program.
type SportEntry struct {
	catalog.Sport
	Program catalog.Program `json:"program"`
}

func sportEntries() []SportEntry {
	sports := catalog.Sports()
	out := make([]SportEntry, len(sports))
	for i, s := range sports {
		prog, _ := catalog.ProgramFor(s.Name)
		out[i] = SportEntry{Sport: s, Program: prog}
	}
	return out
}

func toolListSports() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcpJSON(sportEntries()), nil
	}
}

func toolGenerateSessions(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sport, err := req.RequireString("sport")
		if err != nil || sport == "" {
			return mcpError("sport is required"), nil
		}
		return mcpJSON(deps.Generator.All(sport)), nil
	}
}

func toolGetPerformance(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sport := req.GetString("sport", "")
		if sport == "" {
			return mcpJSON(deps.Projector.Report()), nil
		}
		imp, ok := performance.ImprovementFor(sport)
		if !ok {
			return mcpError(fmt.Sprintf("unknown sport %q", sport)), nil
		}
		return mcpJSON(imp), nil
	}
}

func toolGetPhase() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		week, err := req.RequireInt("week")
		if err != nil {
			return mcpError("week is required"), nil
		}
		phase := periodization.PhaseForWeek(week)
		return mcpJSON(map[string]any{
			"week":  week,
			"phase": phase.Name,
			"focus": phase.Focus,
		}), nil
	}
}

func toolBuildPlan(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sport, err := req.RequireString("sport")
		if err != nil || sport == "" {
			return mcpError("sport is required"), nil
		}

		p, err := plan.Build(sport, plan.Athlete{
			Name:       req.GetString("name", ""),
			Age:        req.GetInt("age", 0),
			Position:   req.GetString("position", ""),
			Experience: req.GetString("experience", ""),
		})
		if errors.Is(err, plan.ErrUnknownSport) {
			return mcpError(fmt.Sprintf("unknown sport %q; call list_sports for valid names", sport)), nil
		}
		if err != nil {
			return mcpError(err.Error()), nil
		}

		if req.GetBool("save", false) {
			if err := deps.Store.Save(ctx, p); err != nil {
				if errors.Is(err, store.ErrDisabled) {
					return mcpError("plan storage is disabled"), nil
				}
				deps.Logger.Error("mcp build_plan save", "error", err)
				return mcpError(fmt.Sprintf("failed to save plan: %v", err)), nil
			}
			deps.Logger.Info("Plan saved via MCP", "plan_id", p.ID, "sport", p.Sport)
		}
		return mcpJSON(p), nil
	}
}

func toolListPlans(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		f := store.Filter{
			Sport: req.GetString("sport", ""),
			Limit: req.GetInt("limit", store.DefaultLimit),
		}
		plans, err := deps.Store.List(ctx, f.Normalize())
		if errors.Is(err, store.ErrDisabled) {
			return mcpError("plan storage is disabled"), nil
		}
		if err != nil {
			deps.Logger.Error("mcp list_plans", "error", err)
			return mcpError(fmt.Sprintf("list failed: %v", err)), nil
		}
		return mcpJSON(plans), nil
	}
}

func resourceCatalog() server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		doc := CatalogDocument{
			Sports: sportEntries(),
			Phases: periodization.Blocks(),
			Weeks:  periodization.TotalWeeks,
			Method: plan.TrainingMethod,
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func mcpJSON(v any) *mcp.CallToolResult {
	b, err := json.Marshal(v)
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err))
	}
	return mcpText(string(b))
}

func mcpText(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

func mcpError(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError(msg)
}
