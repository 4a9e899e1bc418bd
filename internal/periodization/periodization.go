// Package periodization maps a training week to its macro-cycle phase.
package periodization

// Program length in weeks.
const (
	FirstWeek  = 1
	TotalWeeks = 16
)

// Phase is a named macro-cycle stage.
type Phase struct {
	Name  string `json:"phase"`
	Focus string `json:"focus"`
}

// Block is a phase together with the weeks it covers.
type Block struct {
	Phase
	StartWeek   int    `json:"start_week"`
	EndWeek     int    `json:"end_week"`
	Description string `json:"description"`
}

var (
	BaseBuilding        = Phase{Name: "Base Building", Focus: "Foundation & Volume"}
	StrengthDevelopment = Phase{Name: "Strength Development", Focus: "Power & Force Production"}
	SpeedDevelopment    = Phase{Name: "Speed Development", Focus: "Maximum Velocity & Technique"}
	CompetitionPhase    = Phase{Name: "Competition Phase", Focus: "Peak Performance & Maintenance"}
)

// PhaseForWeek returns the phase for week. It is total over all integers:
// weeks below 1 fall into Base Building and weeks above 16 into Competition.
// Callers that need a valid week clamp with ClampWeek first.
func PhaseForWeek(week int) Phase {
	switch {
	case week <= 4:
		return BaseBuilding
	case week <= 8:
		return StrengthDevelopment
	case week <= 12:
		return SpeedDevelopment
	default:
		return CompetitionPhase
	}
}

// Blocks returns the four phases with their week ranges, in order.
func Blocks() []Block {
	return []Block{
		{Phase: BaseBuilding, StartWeek: 1, EndWeek: 4, Description: "Foundation development"},
		{Phase: StrengthDevelopment, StartWeek: 5, EndWeek: 8, Description: "Power development"},
		{Phase: SpeedDevelopment, StartWeek: 9, EndWeek: 12, Description: "Maximum velocity"},
		{Phase: CompetitionPhase, StartWeek: 13, EndWeek: 16, Description: "Peak performance"},
	}
}

// ClampWeek limits week to [FirstWeek, TotalWeeks].
func ClampWeek(week int) int {
	return max(FirstWeek, min(TotalWeeks, week))
}

// Previous returns the week before week, never below FirstWeek.
func Previous(week int) int { return ClampWeek(week - 1) }

// Next returns the week after week, never above TotalWeeks.
func Next(week int) int { return ClampWeek(week + 1) }
