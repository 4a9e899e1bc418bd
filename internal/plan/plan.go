// Package plan builds the 16-week speed program for one athlete: a weekly
// intensity and volume progression grouped into the four periodization
// phases.
package plan

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/albapepper/sportspeed/internal/catalog"
	"github.com/albapepper/sportspeed/internal/periodization"
)

// TrainingMethod is the label attached to every generated plan.
const TrainingMethod = "Olympic periodization"

// Athlete age bounds (high school).
const (
	MinAge     = 14
	MaxAge     = 18
	DefaultAge = 16
)

// Experience levels.
const (
	Beginner     = "Beginner"
	Intermediate = "Intermediate"
	Advanced     = "Advanced"
)

var (
	ErrUnknownSport   = errors.New("unknown sport")
	ErrInvalidAthlete = errors.New("invalid athlete")
)

// Athlete describes who the plan is for.
type Athlete struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Position   string `json:"position,omitempty"`
	Experience string `json:"experience"`
}

// Week is one row of the progression table.
type Week struct {
	Week      int     `json:"week"`
	Phase     string  `json:"phase"`
	Intensity float64 `json:"intensity_pct"`
	Volume    int     `json:"volume_m"`
}

// PhaseSummary aggregates the weeks of one phase block.
type PhaseSummary struct {
	periodization.Block
	AverageIntensity float64 `json:"average_intensity_pct"`
	TotalVolume      int     `json:"total_volume_m"`
}

// Plan is a complete 16-week program.
type Plan struct {
	ID        string          `json:"id"`
	Sport     string          `json:"sport"`
	Athlete   Athlete         `json:"athlete"`
	Program   catalog.Program `json:"program"`
	Method    string          `json:"method"`
	Weeks     []Week          `json:"weeks"`
	Phases    []PhaseSummary  `json:"phases"`
	CreatedAt time.Time       `json:"created_at"`
}

// Build generates the 16-week plan for sport. Unlike the session generators
// there is no generic fallback: an unknown sport is an error.
func Build(sport string, athlete Athlete) (*Plan, error) {
	program, ok := catalog.ProgramFor(sport)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSport, sport)
	}
	a, err := NormalizeAthlete(athlete)
	if err != nil {
		return nil, err
	}

	weeks := Progression(program.BaseVolume)
	return &Plan{
		ID:        uuid.NewString(),
		Sport:     sport,
		Athlete:   a,
		Program:   program,
		Method:    TrainingMethod,
		Weeks:     weeks,
		Phases:    Summarize(weeks),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NormalizeAthlete fills defaults and validates age and experience.
func NormalizeAthlete(a Athlete) (Athlete, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		a.Name = "Athlete"
	}
	a.Position = strings.TrimSpace(a.Position)

	if a.Age == 0 {
		a.Age = DefaultAge
	}
	if a.Age < MinAge || a.Age > MaxAge {
		return Athlete{}, fmt.Errorf("%w: age %d outside %d-%d", ErrInvalidAthlete, a.Age, MinAge, MaxAge)
	}

	switch strings.ToLower(strings.TrimSpace(a.Experience)) {
	case "", "beginner":
		a.Experience = Beginner
	case "intermediate":
		a.Experience = Intermediate
	case "advanced":
		a.Experience = Advanced
	default:
		return Athlete{}, fmt.Errorf("%w: experience %q", ErrInvalidAthlete, a.Experience)
	}
	return a, nil
}

// Progression computes the weekly intensity (%) and volume (m) for a program
// with the given base weekly volume. Intensity is capped at 100%.
func Progression(baseVolume int) []Week {
	base := float64(baseVolume)
	weeks := make([]Week, 0, periodization.TotalWeeks)

	for w := periodization.FirstWeek; w <= periodization.TotalWeeks; w++ {
		wf := float64(w)
		var intensity, factor float64
		switch {
		case w <= 4:
			intensity = 78 + wf*2
			factor = 0.75 + wf*0.05
		case w <= 8:
			intensity = 83 + (wf-4)*2
			factor = 0.85 + (wf-4)*0.03
		case w <= 12:
			intensity = 88 + (wf-8)*3
			factor = 0.95 + (wf-8)*0.02
		default:
			intensity = 95 + (wf-12)*1.25
			factor = 1.0 + (wf-12)*0.05
		}

		weeks = append(weeks, Week{
			Week:      w,
			Phase:     periodization.PhaseForWeek(w).Name,
			Intensity: math.Min(intensity, 100),
			Volume:    int(base * factor),
		})
	}
	return weeks
}

// Summarize groups weeks into the periodization blocks.
func Summarize(weeks []Week) []PhaseSummary {
	blocks := periodization.Blocks()
	out := make([]PhaseSummary, 0, len(blocks))

	for _, b := range blocks {
		s := PhaseSummary{Block: b}
		n := 0
		var sum float64
		for _, w := range weeks {
			if w.Week < b.StartWeek || w.Week > b.EndWeek {
				continue
			}
			sum += w.Intensity
			s.TotalVolume += w.Volume
			n++
		}
		if n > 0 {
			s.AverageIntensity = math.Round(sum/float64(n)*10) / 10
		}
		out = append(out, s)
	}
	return out
}

// TotalVolume is the sum of all weekly volumes.
func (p *Plan) TotalVolume() int {
	total := 0
	for _, w := range p.Weeks {
		total += w.Volume
	}
	return total
}
