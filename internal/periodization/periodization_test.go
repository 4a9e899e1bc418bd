package periodization

import "testing"

func TestPhaseForWeek(t *testing.T) {
	tests := []struct {
		week      int
		wantName  string
		wantFocus string
	}{
		{1, "Base Building", "Foundation & Volume"},
		{4, "Base Building", "Foundation & Volume"},
		{5, "Strength Development", "Power & Force Production"},
		{8, "Strength Development", "Power & Force Production"},
		{9, "Speed Development", "Maximum Velocity & Technique"},
		{12, "Speed Development", "Maximum Velocity & Technique"},
		{13, "Competition Phase", "Peak Performance & Maintenance"},
		{16, "Competition Phase", "Peak Performance & Maintenance"},
		// not validated: out-of-range weeks still map to a phase
		{0, "Base Building", "Foundation & Volume"},
		{-7, "Base Building", "Foundation & Volume"},
		{40, "Competition Phase", "Peak Performance & Maintenance"},
	}
	for _, tt := range tests {
		got := PhaseForWeek(tt.week)
		if got.Name != tt.wantName || got.Focus != tt.wantFocus {
			t.Errorf("PhaseForWeek(%d) = %+v, want {%s %s}", tt.week, got, tt.wantName, tt.wantFocus)
		}
	}
}

func TestBlocksAgreeWithPhaseForWeek(t *testing.T) {
	blocks := Blocks()
	if len(blocks) != 4 {
		t.Fatalf("len(Blocks()) = %d, want 4", len(blocks))
	}
	next := FirstWeek
	for _, b := range blocks {
		if b.StartWeek != next {
			t.Errorf("%s starts at %d, want %d", b.Name, b.StartWeek, next)
		}
		for w := b.StartWeek; w <= b.EndWeek; w++ {
			if PhaseForWeek(w) != b.Phase {
				t.Errorf("week %d: PhaseForWeek = %s, block says %s", w, PhaseForWeek(w).Name, b.Name)
			}
		}
		next = b.EndWeek + 1
	}
	if next != TotalWeeks+1 {
		t.Errorf("blocks end at %d, want %d", next-1, TotalWeeks)
	}
}

func TestClampWeek(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {8, 8}, {16, 16}, {17, 16}, {100, 16},
	}
	for _, tt := range tests {
		if got := ClampWeek(tt.in); got != tt.want {
			t.Errorf("ClampWeek(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	week := FirstWeek
	for i := 0; i < 40; i++ {
		week = Next(week)
		if week < FirstWeek || week > TotalWeeks {
			t.Fatalf("Next produced %d", week)
		}
	}
	if week != TotalWeeks {
		t.Errorf("after many Next taps week = %d, want %d", week, TotalWeeks)
	}
	for i := 0; i < 40; i++ {
		week = Previous(week)
		if week < FirstWeek || week > TotalWeeks {
			t.Fatalf("Previous produced %d", week)
		}
	}
	if week != FirstWeek {
		t.Errorf("after many Previous taps week = %d, want %d", week, FirstWeek)
	}
}
