package builder

import (
	"math/rand/v2"
	"net/url"
	"testing"

	"github.com/albapepper/sportspeed/internal/session"
)

func TestNewState(t *testing.T) {
	s := New()
	if s.Sport != "" || s.Week != 1 {
		t.Errorf("New() = %+v, want no sport and week 1", s)
	}
}

func TestWeekNavigationClamped(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Previous()
	}
	if s.Week != 1 {
		t.Errorf("after Previous taps at week 1, week = %d", s.Week)
	}
	for i := 0; i < 30; i++ {
		s.Next()
		if s.Week < 1 || s.Week > 16 {
			t.Fatalf("week left bounds: %d", s.Week)
		}
	}
	if s.Week != 16 {
		t.Errorf("after Next taps, week = %d, want 16", s.Week)
	}
	s.Navigate("prev")
	if s.Week != 15 {
		t.Errorf("Navigate(prev) week = %d, want 15", s.Week)
	}
	s.Navigate("sideways")
	if s.Week != 15 {
		t.Errorf("unknown action changed week to %d", s.Week)
	}
	s.SetWeek(99)
	if s.Week != 16 {
		t.Errorf("SetWeek(99) = %d, want 16", s.Week)
	}
}

func TestRenderWithoutSport(t *testing.T) {
	v := New().Render(nil)
	if v.Selected != nil {
		t.Error("expected no selection section before a sport is chosen")
	}
	if len(v.Sports) != 6 {
		t.Errorf("len(Sports) = %d, want 6", len(v.Sports))
	}
	for _, c := range v.Sports {
		if c.Selected {
			t.Errorf("card %q selected with no sport chosen", c.Name)
		}
	}
	if len(v.Footer) != 2 {
		t.Errorf("len(Footer) = %d, want 2", len(v.Footer))
	}
}

func TestRenderSelectedSport(t *testing.T) {
	s := New()
	s.Select("Basketball")
	s.SetWeek(9)

	v := s.Render(session.NewGenerator(rand.New(rand.NewPCG(1, 2))))
	if v.Selected == nil {
		t.Fatal("expected a selection section")
	}
	sel := v.Selected
	if sel.Phase.Name != "Speed Development" {
		t.Errorf("phase = %q", sel.Phase.Name)
	}
	if sel.WeekLabel != "Week 9 of 16" {
		t.Errorf("week label = %q", sel.WeekLabel)
	}
	if sel.PrevWeek != 8 || sel.NextWeek != 10 {
		t.Errorf("prev/next = %d/%d", sel.PrevWeek, sel.NextWeek)
	}
	if sel.Sessions.Endurance.Activity != "Court suicides and defensive slides" {
		t.Errorf("endurance activity = %q", sel.Sessions.Endurance.Activity)
	}
	if len(sel.Tips) != 4 {
		t.Errorf("len(Tips) = %d, want 4", len(sel.Tips))
	}

	selected := 0
	for _, c := range v.Sports {
		if c.Selected {
			selected++
			if c.Name != "Basketball" {
				t.Errorf("wrong card selected: %q", c.Name)
			}
		}
	}
	if selected != 1 {
		t.Errorf("%d cards selected, want 1", selected)
	}
}

// Sessions are regenerated on every render, so the speed session is expected
// to vary across renders of an unchanged selection.
func TestRenderIsNotMemoized(t *testing.T) {
	s := New()
	s.Select("Track & Field")
	gen := session.NewGenerator(rand.New(rand.NewPCG(5, 6)))

	first := s.Render(gen).Selected.Sessions.Speed
	varied := false
	for i := 0; i < 50; i++ {
		s.Next()
		s.Previous()
		if s.Render(gen).Selected.Sessions.Speed != first {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("speed session never changed across 50 renders")
	}

	strength := s.Render(gen).Selected.Sessions.Strength
	again := s.Render(gen).Selected.Sessions.Strength
	for i := range strength.Exercises {
		if strength.Exercises[i] != again.Exercises[i] {
			t.Errorf("strength session changed between renders: %v vs %v", strength.Exercises, again.Exercises)
		}
	}
}

func TestRenderClampsZeroWeek(t *testing.T) {
	s := State{Sport: "Soccer"}
	v := s.Render(nil)
	if v.Selected.Week != 1 {
		t.Errorf("week = %d, want 1", v.Selected.Week)
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		query     string
		wantSport string
		wantWeek  int
		wantErr   bool
	}{
		{"", "", 1, false},
		{"sport=Soccer", "Soccer", 1, false},
		{"sport=Soccer&week=7", "Soccer", 7, false},
		{"sport=Soccer&week=40", "Soccer", 16, false},
		{"sport=Soccer&week=-3", "Soccer", 1, false},
		{"sport=Soccer&week=7&nav=next", "Soccer", 8, false},
		{"sport=Soccer&week=16&nav=next", "Soccer", 16, false},
		{"sport=Soccer&week=1&nav=prev", "Soccer", 1, false},
		{"week=abc", "", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			s, err := ParseQuery(q)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if s.Sport != tt.wantSport || s.Week != tt.wantWeek {
				t.Errorf("ParseQuery(%q) = %+v", tt.query, s)
			}
		})
	}
}
