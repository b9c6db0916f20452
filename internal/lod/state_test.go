package lod

import (
	"testing"
	"time"
)

// TestCellStateFirstEvaluation verifies a fresh state is always due and
// reports NoLevel as its previous level.
func TestCellStateFirstEvaluation(t *testing.T) {
	var s CellState
	now := time.Now()

	if !s.ShouldEvaluate(now, 10) {
		t.Error("fresh state should evaluate immediately")
	}
	if s.Previous() != NoLevel {
		t.Errorf("fresh state Previous() = %d, want NoLevel", s.Previous())
	}
}

// TestCellStateIntervalGating verifies the level is re-evaluated only after
// the update interval elapses, decoupling LOD from frame cadence.
func TestCellStateIntervalGating(t *testing.T) {
	var s CellState
	start := time.Now()
	s.Record(2, start)

	if s.ShouldEvaluate(start.Add(100*time.Millisecond), 0.5) {
		t.Error("state re-evaluated before interval elapsed")
	}
	if s.ShouldEvaluate(start.Add(499*time.Millisecond), 0.5) {
		t.Error("state re-evaluated just under the interval")
	}
	if !s.ShouldEvaluate(start.Add(500*time.Millisecond), 0.5) {
		t.Error("state not re-evaluated at the interval boundary")
	}
	if s.Previous() != 2 {
		t.Errorf("Previous() = %d, want recorded 2", s.Previous())
	}
}

// TestCellStateZeroInterval verifies a zero interval evaluates every tick.
func TestCellStateZeroInterval(t *testing.T) {
	var s CellState
	now := time.Now()
	s.Record(1, now)
	if !s.ShouldEvaluate(now, 0) {
		t.Error("zero interval should always evaluate")
	}
}
