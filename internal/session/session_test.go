package session

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/albapepper/sportspeed/internal/catalog"
)

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestSpeedKnownSports(t *testing.T) {
	g := seeded(1)
	for _, sport := range catalog.Names() {
		t.Run(sport, func(t *testing.T) {
			allowed := SpeedDistances(sport)
			if len(allowed) != 3 {
				t.Fatalf("SpeedDistances(%q) has %d entries, want 3", sport, len(allowed))
			}
			for i := 0; i < 200; i++ {
				s := g.Speed(sport)
				if !slices.Contains(allowed, s.Distance) {
					t.Fatalf("distance %q not in %v", s.Distance, allowed)
				}
				if s.Reps < 3 || s.Reps > 5 {
					t.Fatalf("reps = %d, want 3..5", s.Reps)
				}
				if s.Type != TypeSpeed || s.Rest != "2-3 minutes" {
					t.Fatalf("unexpected fixed fields: %+v", s)
				}
			}
		})
	}
}

func TestSpeedUnknownSportFallback(t *testing.T) {
	g := seeded(2)
	for i := 0; i < 200; i++ {
		s := g.Speed("Swimming")
		if s.Distance != "30m" && s.Distance != "60m" {
			t.Fatalf("distance = %q, want 30m or 60m", s.Distance)
		}
		if s.Focus != "Swimming specific acceleration and maximum velocity" {
			t.Fatalf("focus = %q", s.Focus)
		}
	}
}

func TestSpeedCoversWholeRange(t *testing.T) {
	g := seeded(3)
	distances := map[string]bool{}
	reps := map[int]bool{}
	for i := 0; i < 500; i++ {
		s := g.Speed("Football")
		distances[s.Distance] = true
		reps[s.Reps] = true
	}
	if len(distances) != 3 {
		t.Errorf("saw distances %v, want all 3", distances)
	}
	if len(reps) != 3 {
		t.Errorf("saw reps %v, want 3, 4 and 5", reps)
	}
}

func TestSpeedSeededIsReproducible(t *testing.T) {
	a, b := seeded(42), seeded(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Speed("Soccer"), b.Speed("Soccer"); x != y {
			t.Fatalf("draw %d differs: %+v vs %+v", i, x, y)
		}
	}
}

func TestStrengthFootball(t *testing.T) {
	want := []string{"Squats", "Power Cleans", "Bench Press"}
	for i := 0; i < 10; i++ {
		s := GenerateStrengthSession("Football")
		if !slices.Equal(s.Exercises, want) {
			t.Fatalf("exercises = %v, want %v", s.Exercises, want)
		}
		if s.Sets != "3-4 sets" || s.Reps != "6-8 reps" {
			t.Fatalf("sets/reps = %q/%q", s.Sets, s.Reps)
		}
		if s.Focus != "Football specific power development" {
			t.Fatalf("focus = %q", s.Focus)
		}
	}
}

func TestStrengthUnknownSportFallback(t *testing.T) {
	s := GenerateStrengthSession("Swimming")
	want := []string{"Squats", "Deadlifts", "Bench Press"}
	if !slices.Equal(s.Exercises, want) {
		t.Errorf("exercises = %v, want %v", s.Exercises, want)
	}
}

func TestStrengthDoesNotAliasTable(t *testing.T) {
	s := GenerateStrengthSession("Soccer")
	s.Exercises[0] = "Curls"
	if GenerateStrengthSession("Soccer").Exercises[0] != "Single Leg Squats" {
		t.Error("mutating a session changed the exercise table")
	}
}

func TestEnduranceBasketball(t *testing.T) {
	s := GenerateEnduranceSession("Basketball")
	if s.Duration != "25 minutes" {
		t.Errorf("duration = %q", s.Duration)
	}
	if s.Activity != "Court suicides and defensive slides" {
		t.Errorf("activity = %q", s.Activity)
	}
	if s.Intensity != "Moderate to high" {
		t.Errorf("intensity = %q", s.Intensity)
	}
	if s.Type != TypeEndurance {
		t.Errorf("type = %q", s.Type)
	}
}

func TestEnduranceUnknownSportFallback(t *testing.T) {
	s := GenerateEnduranceSession("")
	if s.Duration != "30 minutes" || s.Activity != "Continuous aerobic work" {
		t.Errorf("fallback = %+v", s)
	}
	if s.Focus != " specific cardiovascular conditioning" {
		t.Errorf("focus = %q", s.Focus)
	}
}

func TestAllBundlesThreeSessions(t *testing.T) {
	s := seeded(7).All("Lacrosse")
	if s.Sport != "Lacrosse" {
		t.Errorf("sport = %q", s.Sport)
	}
	if s.Speed.Type != TypeSpeed || s.Strength.Type != TypeStrength || s.Endurance.Type != TypeEndurance {
		t.Errorf("types = %q/%q/%q", s.Speed.Type, s.Strength.Type, s.Endurance.Type)
	}
}

func TestDefaultGeneratorNil(t *testing.T) {
	var g *Generator
	s := g.Speed("Baseball")
	if s.Reps < 3 || s.Reps > 5 {
		t.Errorf("reps = %d", s.Reps)
	}
}
