package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/albapepper/sportspeed/internal/performance"
	"github.com/albapepper/sportspeed/internal/plan"
	"github.com/albapepper/sportspeed/internal/session"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// useTempStore points the sqlite plan store at a fresh directory.
func useTempStore(t *testing.T) {
	t.Helper()
	t.Setenv("PLAN_STORE", "sqlite")
	t.Setenv("SQLITE_DATA_DIR", t.TempDir())
}

func TestSportsCommand(t *testing.T) {
	out, err := run(t, "sports")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"SPORT", "Football", "Track & Field", "600m"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionsCommandJSON(t *testing.T) {
	out, err := run(t, "sessions", "Basketball", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var s session.Sessions
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("parse: %v\n%s", err, out)
	}
	if s.Sport != "Basketball" || s.Endurance.Activity != "Court suicides and defensive slides" {
		t.Errorf("sessions = %+v", s)
	}
}

func TestSessionsCommandUnknownSport(t *testing.T) {
	out, err := run(t, "sessions", "Curling")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Curling: this week's sessions") {
		t.Errorf("output = %s", out)
	}
}

func TestPhaseCommand(t *testing.T) {
	tests := []struct {
		week string
		want string
	}{
		{"1", "Week 1: Base Building"},
		{"5", "Week 5: Strength Development"},
		{"12", "Week 12: Speed Development"},
		{"16", "Week 16: Competition Phase"},
	}
	for _, tt := range tests {
		out, err := run(t, "phase", tt.week)
		if err != nil {
			t.Fatalf("week %s: %v", tt.week, err)
		}
		if !strings.HasPrefix(out, tt.want) {
			t.Errorf("week %s: got %q, want prefix %q", tt.week, out, tt.want)
		}
	}
	if _, err := run(t, "phase", "nine"); err == nil {
		t.Error("non-integer week should fail")
	}
}

func TestPhasesCommand(t *testing.T) {
	out, err := run(t, "phases")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"1-4", "Base Building", "13-16", "Peak performance"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPerformanceCommand(t *testing.T) {
	out, err := run(t, "performance")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"SPRINT TIME", "AVG IMPROVEMENT", "Track & Field", "18.4%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "performance", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var r performance.Report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("parse: %v\n%s", err, out)
	}
	if len(r.Progression) != 16 || r.Progression[15].Week != 16 {
		t.Errorf("progression = %+v", r.Progression)
	}
}

func TestPlanBuildWithoutSave(t *testing.T) {
	t.Setenv("PLAN_STORE", "none")
	out, err := run(t, "plan", "build", "Soccer", "--name", "Sam", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var p plan.Plan
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Athlete.Name != "Sam" || p.Athlete.Age != plan.DefaultAge || len(p.Weeks) != 16 {
		t.Errorf("plan = %+v", p.Athlete)
	}
}

func TestPlanBuildErrors(t *testing.T) {
	t.Setenv("PLAN_STORE", "none")
	if _, err := run(t, "plan", "build", "Rugby"); err == nil {
		t.Error("unknown sport should fail")
	}
	if _, err := run(t, "plan", "build", "Soccer", "--age", "30"); err == nil {
		t.Error("out-of-range age should fail")
	}
	if _, err := run(t, "plan", "build", "Soccer", "--save"); err == nil {
		t.Error("saving with a disabled store should fail")
	}
}

func TestPlanLifecycle(t *testing.T) {
	useTempStore(t)

	out, err := run(t, "plan", "build", "Lacrosse", "--name", "Jo", "--experience", "Advanced", "--save", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var p plan.Plan
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatal(err)
	}

	out, err = run(t, "plan", "list", "--sport", "Lacrosse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, p.ID) {
		t.Errorf("list missing %s:\n%s", p.ID, out)
	}

	out, err = run(t, "plan", "show", p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Competition Phase") || !strings.Contains(out, "Jo") {
		t.Errorf("show output:\n%s", out)
	}

	if _, err := run(t, "plan", "delete", p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "plan", "show", p.ID); err == nil {
		t.Error("show after delete should fail")
	}
	if _, err := run(t, "plan", "delete", p.ID); err == nil {
		t.Error("second delete should fail")
	}
}

func TestPlanPrune(t *testing.T) {
	useTempStore(t)
	if _, err := run(t, "plan", "build", "Baseball", "--save"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "plan", "prune", "--older-than-days", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Pruned 0 plan(s)") {
		t.Errorf("fresh plan should survive: %s", out)
	}

	if _, err := run(t, "plan", "prune", "--older-than-days", "0"); err == nil {
		t.Error("zero days should fail")
	}
}

func TestPlanPruneDisabledStore(t *testing.T) {
	t.Setenv("PLAN_STORE", "none")
	out, err := run(t, "plan", "prune", "--older-than-days", "30")
	if err == nil {
		t.Fatalf("prune with storage disabled succeeded: %q", out)
	}
	if !strings.Contains(err.Error(), "disabled") {
		t.Errorf("err = %v", err)
	}
	if strings.Contains(out, "Pruned") {
		t.Errorf("output = %q", out)
	}
}
