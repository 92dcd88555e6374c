package rules

import (
	"testing"

	"go-life/model"
)

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		neighbors int
		alive     bool
		expected  bool
	}{
		{0, true, false}, // isolation
		{1, true, false},
		{2, true, true}, // survival
		{3, true, true},
		{4, true, false}, // overcrowding
		{8, true, false},
		{2, false, false},
		{3, false, true}, // birth
		{4, false, false},
	}
	for _, tt := range tests {
		if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.expected {
			t.Errorf("ApplyConwayRules(%d, %v) = %v, expected %v",
				tt.neighbors, tt.alive, got, tt.expected)
		}
	}
}

func TestNextStateIsolationDeath(t *testing.T) {
	snapshot, err := model.LoadWorld(3, 3, []string{"", " *"})
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if NextState(snapshot, 2, 2) != model.Dead {
		t.Fatal("isolated cell should die")
	}
}

func TestNextStateBirth(t *testing.T) {
	snapshot, err := model.LoadWorld(3, 3, []string{"***"})
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if NextState(snapshot, 2, 2) != model.Alive {
		t.Fatal("dead cell with 3 neighbors should be born")
	}
}

func TestNextStateReadsOnlySnapshot(t *testing.T) {
	// The rule at the top-left interior corner sees only dead border beyond
	// the edge; no wraparound contribution from the far side.
	snapshot, err := model.LoadWorld(3, 3, []string{"* *", "  *", "***"})
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if NextState(snapshot, 1, 1) != model.Dead {
		t.Fatal("corner cell should die: its only neighbors beyond the edge are border cells")
	}
}
