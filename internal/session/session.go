// Package session generates the weekly speed, strength and endurance sessions
// for a sport. Each generator owns its lookup table and its own fallback for
// sports it does not know; unknown names never produce an error.
//
// Only the speed session is randomized (distance and reps). Strength and
// endurance sessions are fully determined by the sport name.
package session

import (
	"fmt"
	"math/rand/v2"
)

// Session type labels.
const (
	TypeSpeed     = "Speed Session"
	TypeStrength  = "Strength Session"
	TypeEndurance = "Endurance Session"
)

const (
	speedRest          = "2-3 minutes"
	strengthSets       = "3-4 sets"
	strengthReps       = "6-8 reps"
	enduranceIntensity = "Moderate to high"

	minSpeedReps = 3
	maxSpeedReps = 5
	maxExercises = 3
)

// SpeedSession is a sprint session with a randomized distance and rep count.
type SpeedSession struct {
	Type     string `json:"type"`
	Distance string `json:"distance"`
	Reps     int    `json:"reps"`
	Rest     string `json:"rest"`
	Focus    string `json:"focus"`
}

// StrengthSession lists up to three sport-specific exercises.
type StrengthSession struct {
	Type      string   `json:"type"`
	Exercises []string `json:"exercises"`
	Sets      string   `json:"sets"`
	Reps      string   `json:"reps"`
	Focus     string   `json:"focus"`
}

// EnduranceSession is a conditioning block.
type EnduranceSession struct {
	Type      string `json:"type"`
	Duration  string `json:"duration"`
	Activity  string `json:"activity"`
	Intensity string `json:"intensity"`
	Focus     string `json:"focus"`
}

// Sessions bundles the three weekly sessions shown for a sport.
type Sessions struct {
	Sport     string           `json:"sport"`
	Speed     SpeedSession     `json:"speed"`
	Strength  StrengthSession  `json:"strength"`
	Endurance EnduranceSession `json:"endurance"`
}

// Generator produces sessions. A Generator built with a seeded *rand.Rand is
// not safe for concurrent use; the zero value and Default use the global
// source and are.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng. A nil rng uses the
// global source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Default draws from the global random source.
var Default = &Generator{}

func (g *Generator) intN(n int) int {
	if g == nil || g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}

// --------------------------------------------------------------------------
// Speed
// --------------------------------------------------------------------------

var speedDistances = map[string][]string{
	"Football":      {"10m", "20m", "40m"},
	"Soccer":        {"15m", "25m", "50m"},
	"Basketball":    {"5m", "15m", "25m"},
	"Baseball":      {"30m", "60m", "90m"},
	"Lacrosse":      {"20m", "40m", "60m"},
	"Track & Field": {"30m", "60m", "100m"},
}

// SpeedDistances returns the distance list the speed generator draws from for
// sport, including the fallback list for unknown sports.
func SpeedDistances(sport string) []string {
	distances, ok := speedDistances[sport]
	if !ok {
		distances = []string{"30m", "60m"}
	}
	out := make([]string, len(distances))
	copy(out, distances)
	return out
}

// Speed picks a distance uniformly from the sport's list and reps uniformly
// from 3..5.
func (g *Generator) Speed(sport string) SpeedSession {
	distances := SpeedDistances(sport)
	return SpeedSession{
		Type:     TypeSpeed,
		Distance: distances[g.intN(len(distances))],
		Reps:     minSpeedReps + g.intN(maxSpeedReps-minSpeedReps+1),
		Rest:     speedRest,
		Focus:    fmt.Sprintf("%s specific acceleration and maximum velocity", sport),
	}
}

// --------------------------------------------------------------------------
// Strength
// --------------------------------------------------------------------------

var strengthExercises = map[string][]string{
	"Football":      {"Squats", "Power Cleans", "Bench Press"},
	"Soccer":        {"Single Leg Squats", "Lateral Lunges", "Core Rotations"},
	"Basketball":    {"Jump Squats", "Vertical Jumps", "Lateral Bounds"},
	"Baseball":      {"Rotational Throws", "Single Arm Rows", "Hip Thrusts"},
	"Lacrosse":      {"Multi-Directional Lunges", "Stick Drills", "Agility Ladder"},
	"Track & Field": {"Olympic Lifts", "Plyometric Bounds", "Sprint Mechanics"},
}

// Strength returns the first three exercises for the sport.
func (g *Generator) Strength(sport string) StrengthSession {
	exercises, ok := strengthExercises[sport]
	if !ok {
		exercises = []string{"Squats", "Deadlifts", "Bench Press"}
	}
	n := min(len(exercises), maxExercises)
	picked := make([]string, n)
	copy(picked, exercises[:n])

	return StrengthSession{
		Type:      TypeStrength,
		Exercises: picked,
		Sets:      strengthSets,
		Reps:      strengthReps,
		Focus:     fmt.Sprintf("%s specific power development", sport),
	}
}

// --------------------------------------------------------------------------
// Endurance
// --------------------------------------------------------------------------

type enduranceBlock struct {
	duration string
	activity string
}

var enduranceBlocks = map[string]enduranceBlock{
	"Football":      {"20 minutes", "Interval sprints with rest"},
	"Soccer":        {"30 minutes", "Continuous running with direction changes"},
	"Basketball":    {"25 minutes", "Court suicides and defensive slides"},
	"Baseball":      {"15 minutes", "Base running simulation"},
	"Lacrosse":      {"25 minutes", "Field transition runs"},
	"Track & Field": {"35 minutes", "Tempo runs and stride work"},
}

// Endurance returns the sport's fixed conditioning block.
func (g *Generator) Endurance(sport string) EnduranceSession {
	block, ok := enduranceBlocks[sport]
	if !ok {
		block = enduranceBlock{"30 minutes", "Continuous aerobic work"}
	}
	return EnduranceSession{
		Type:      TypeEndurance,
		Duration:  block.duration,
		Activity:  block.activity,
		Intensity: enduranceIntensity,
		Focus:     fmt.Sprintf("%s specific cardiovascular conditioning", sport),
	}
}

// All generates all three sessions. Every call draws fresh speed values.
func (g *Generator) All(sport string) Sessions {
	return Sessions{
		Sport:     sport,
		Speed:     g.Speed(sport),
		Strength:  g.Strength(sport),
		Endurance: g.Endurance(sport),
	}
}

// GenerateSpeedSession draws a speed session from the global source.
func GenerateSpeedSession(sport string) SpeedSession { return Default.Speed(sport) }

// GenerateStrengthSession returns the strength session for sport.
func GenerateStrengthSession(sport string) StrengthSession { return Default.Strength(sport) }

// GenerateEnduranceSession returns the endurance session for sport.
func GenerateEnduranceSession(sport string) EnduranceSession { return Default.Endurance(sport) }
