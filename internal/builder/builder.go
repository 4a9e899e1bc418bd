// Package builder is the training builder screen model: the selected sport
// and week, and the view rendered from them.
//
// Render regenerates all sessions on every call. The speed session's distance
// and reps can therefore change between renders even when the selection does
// not (e.g. after week navigation).
package builder

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/albapepper/sportspeed/internal/catalog"
	"github.com/albapepper/sportspeed/internal/periodization"
	"github.com/albapepper/sportspeed/internal/session"
)

const (
	Title    = "Speed Training by Atlee Mahorn"
	Subtitle = "Olympic Sprint Methodology for High School Coaches"
)

// CoachingTips are shown under the sessions for every sport.
var CoachingTips = []string{
	"Focus on proper form before increasing intensity",
	"Allow adequate recovery between high-intensity sessions",
	"Monitor athlete fatigue and adjust volume accordingly",
	"Progressive overload should be gradual and systematic",
}

// Footer lines.
var Footer = []string{
	"Professional coaching methodology adapted for high school athletics",
	"3-time Olympic participant • Champion optimization methods",
}

// State is the builder selection. The zero value has no sport selected and
// an invalid week; use New.
type State struct {
	Sport string `json:"selected_sport"`
	Week  int    `json:"selected_week"`
}

// New returns the initial state: no sport, week 1.
func New() State {
	return State{Week: periodization.FirstWeek}
}

// Select sets the selected sport.
func (s *State) Select(sport string) { s.Sport = sport }

// Previous moves one week back, stopping at week 1.
func (s *State) Previous() { s.Week = periodization.Previous(s.Week) }

// Next moves one week forward, stopping at week 16.
func (s *State) Next() { s.Week = periodization.Next(s.Week) }

// SetWeek jumps to week, clamped to the program.
func (s *State) SetWeek(week int) { s.Week = periodization.ClampWeek(week) }

// Navigate applies a navigation action ("prev" or "next"). Other values are
// ignored.
func (s *State) Navigate(action string) {
	switch action {
	case "prev", "previous":
		s.Previous()
	case "next":
		s.Next()
	}
}

// ParseQuery reads a selection from sport, week and nav query parameters.
// A missing week is week 1, an out-of-range week is clamped and nav is applied
// last. A non-integer week is an error.
func ParseQuery(q url.Values) (State, error) {
	s := New()
	s.Select(strings.TrimSpace(q.Get("sport")))
	if raw := q.Get("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			return s, fmt.Errorf("invalid week %q: %w", raw, err)
		}
		s.SetWeek(week)
	}
	s.Navigate(q.Get("nav"))
	return s, nil
}

// Card is one sport tile in the grid.
type Card struct {
	catalog.Sport
	Selected bool `json:"selected"`
}

// Selection is the part of the view shown once a sport is chosen.
type Selection struct {
	Sport      string              `json:"sport"`
	Phase      periodization.Phase `json:"phase"`
	Week       int                 `json:"week"`
	TotalWeeks int                 `json:"total_weeks"`
	WeekLabel  string              `json:"week_label"`
	PrevWeek   int                 `json:"prev_week"`
	NextWeek   int                 `json:"next_week"`
	Sessions   session.Sessions    `json:"sessions"`
	Tips       []string            `json:"coaching_tips"`
}

// View is everything the screen displays for a State.
type View struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Sports   []Card     `json:"sports"`
	Selected *Selection `json:"selected,omitempty"`
	Footer   []string   `json:"footer"`
}

// Render builds the view. gen may be nil to use the global random source.
func (s State) Render(gen *session.Generator) View {
	if gen == nil {
		gen = session.Default
	}

	sports := catalog.Sports()
	cards := make([]Card, len(sports))
	for i, sp := range sports {
		cards[i] = Card{Sport: sp, Selected: sp.Name == s.Sport}
	}

	v := View{
		Title:    Title,
		Subtitle: Subtitle,
		Sports:   cards,
		Footer:   Footer,
	}
	if s.Sport == "" {
		return v
	}

	week := periodization.ClampWeek(s.Week)
	v.Selected = &Selection{
		Sport:      s.Sport,
		Phase:      periodization.PhaseForWeek(week),
		Week:       week,
		TotalWeeks: periodization.TotalWeeks,
		WeekLabel:  fmt.Sprintf("Week %d of %d", week, periodization.TotalWeeks),
		PrevWeek:   periodization.Previous(week),
		NextWeek:   periodization.Next(week),
		Sessions:   gen.All(s.Sport),
		Tips:       CoachingTips,
	}
	return v
}
