// Package performance holds the analytics shown beside the builder: a
// projected 16-week sprint-time progression and the average improvement
// reported per sport.
package performance

import (
	"math"
	"math/rand/v2"

	"github.com/albapepper/sportspeed/internal/periodization"
)

// Sprint projection parameters (seconds).
const (
	BaselineSprint = 4.8
	WeeklyGain     = 0.02
	NoiseStdDev    = 0.02
)

// Improvement is the average improvement athletes of a sport see over a
// full program.
type Improvement struct {
	Sport          string  `json:"sport"`
	AvgImprovement float64 `json:"avg_improvement_pct"`
}

// improvements follows catalog display order.
var improvements = []Improvement{
	{Sport: "Football", AvgImprovement: 12.5},
	{Sport: "Soccer", AvgImprovement: 10.8},
	{Sport: "Basketball", AvgImprovement: 15.2},
	{Sport: "Baseball", AvgImprovement: 9.3},
	{Sport: "Lacrosse", AvgImprovement: 11.7},
	{Sport: "Track & Field", AvgImprovement: 18.4},
}

// Improvements returns a copy of the per-sport improvement table.
func Improvements() []Improvement {
	out := make([]Improvement, len(improvements))
	copy(out, improvements)
	return out
}

// ImprovementFor looks up one sport.
func ImprovementFor(sport string) (Improvement, bool) {
	for _, imp := range improvements {
		if imp.Sport == sport {
			return imp, true
		}
	}
	return Improvement{}, false
}

// Point is one week of the sprint-time projection.
type Point struct {
	Week       int     `json:"week"`
	SprintTime float64 `json:"sprint_time_s"`
}

// Report is the full analytics payload.
type Report struct {
	Progression  []Point       `json:"sprint_progression"`
	Improvements []Improvement `json:"improvements"`
}

// Trend is the noise-free sprint time for week.
func Trend(week int) float64 {
	return BaselineSprint - WeeklyGain*float64(week)
}

// Projector draws the week-to-week noise. A Projector built with a seeded
// *rand.Rand is not safe for concurrent use; Default is.
type Projector struct {
	rng *rand.Rand
}

// NewProjector returns a Projector drawing from rng. A nil rng uses the
// global source.
func NewProjector(rng *rand.Rand) *Projector {
	return &Projector{rng: rng}
}

// Default draws from the global random source.
var Default = &Projector{}

func (p *Projector) norm() float64 {
	if p == nil || p.rng == nil {
		return rand.NormFloat64()
	}
	return p.rng.NormFloat64()
}

// SprintProgression projects weeks 1..16: the linear trend plus Gaussian
// noise, rounded to milliseconds.
func (p *Projector) SprintProgression() []Point {
	out := make([]Point, 0, periodization.TotalWeeks)
	for w := periodization.FirstWeek; w <= periodization.TotalWeeks; w++ {
		t := Trend(w) + p.norm()*NoiseStdDev
		out = append(out, Point{Week: w, SprintTime: math.Round(t*1000) / 1000})
	}
	return out
}

// Report bundles a fresh progression with the improvement table.
func (p *Projector) Report() Report {
	return Report{
		Progression:  p.SprintProgression(),
		Improvements: Improvements(),
	}
}
