package lod

import "testing"

func testConfig() Config {
	return Config{
		DistanceThresholds: []float32{5, 15, 30, 60},
		HysteresisMargin:   2,
	}
}

// TestClassifyThresholds verifies the smallest-matching-threshold rule and
// coarsest-level fallback.
func TestClassifyThresholds(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		distance float32
		want     Level
	}{
		{0, 0},
		{4.99, 0},
		{5, 1},
		{14.9, 1},
		{15, 2},
		{29, 2},
		{30, 3},
		{59.9, 3},
		{60, 4},
		{1e6, 4}, // beyond all thresholds degrades, never errors
	}
	for _, tt := range tests {
		if got := Classify(tt.distance, NoLevel, cfg, 1); got != tt.want {
			t.Errorf("Classify(%v) = %d, want %d", tt.distance, got, tt.want)
		}
	}
}

// TestClassifyMonotonic verifies greater distance never yields a finer level
// when hysteresis is not in play.
func TestClassifyMonotonic(t *testing.T) {
	cfg := testConfig()
	cfg.HysteresisMargin = 0
	prev := Level(0)
	for d := float32(0); d < 100; d += 0.25 {
		got := Classify(d, NoLevel, cfg, 1)
		if got < prev {
			t.Fatalf("Classify(%v) = %d finer than Classify at shorter distance = %d", d, got, prev)
		}
		prev = got
	}
}

// TestClassifyHysteresis verifies hovering near a threshold keeps the
// previous level instead of flickering.
func TestClassifyHysteresis(t *testing.T) {
	cfg := testConfig() // margin 2

	// At 14.0 a fresh classification is level 1. From level 2, the crossed
	// threshold (15) is within the margin, so level 2 sticks.
	if got := Classify(14.0, 2, cfg, 1); got != 2 {
		t.Errorf("Classify(14, prev=2) = %d, want retained 2", got)
	}
	// Same distance from level 1: no level change proposed, stays 1.
	if got := Classify(14.0, 1, cfg, 1); got != 1 {
		t.Errorf("Classify(14, prev=1) = %d, want 1", got)
	}
	// Far from the threshold the switch happens.
	if got := Classify(8.0, 2, cfg, 1); got != 1 {
		t.Errorf("Classify(8, prev=2) = %d, want 1", got)
	}
	// Upward crossings resist too: 16.5 is within margin of 15.
	if got := Classify(16.5, 1, cfg, 1); got != 1 {
		t.Errorf("Classify(16.5, prev=1) = %d, want retained 1", got)
	}
	if got := Classify(20.0, 1, cfg, 1); got != 2 {
		t.Errorf("Classify(20, prev=1) = %d, want 2", got)
	}
}

// TestClassifyNoPrevious verifies the first evaluation never applies
// hysteresis.
func TestClassifyNoPrevious(t *testing.T) {
	cfg := testConfig()
	if got := Classify(14.0, NoLevel, cfg, 1); got != 1 {
		t.Errorf("Classify(14, no previous) = %d, want 1", got)
	}
}

// TestClassifyQualityScale verifies a quality factor below 1 pulls every
// threshold closer, forcing coarser levels sooner.
func TestClassifyQualityScale(t *testing.T) {
	cfg := testConfig()
	cfg.HysteresisMargin = 0

	// 20 sits in [15,30) at full quality: level 2.
	if got := Classify(20, NoLevel, cfg, 1); got != 2 {
		t.Fatalf("Classify(20, q=1) = %d, want 2", got)
	}
	// At half quality the scaled thresholds are [2.5, 7.5, 15, 30]: level 3.
	if got := Classify(20, NoLevel, cfg, 0.5); got != 3 {
		t.Errorf("Classify(20, q=0.5) = %d, want 3", got)
	}
	// Non-positive factors are treated as 1.
	if got := Classify(20, NoLevel, cfg, 0); got != 2 {
		t.Errorf("Classify(20, q=0) = %d, want 2", got)
	}
}

// TestClassifyDeterministic verifies identical inputs always agree.
func TestClassifyDeterministic(t *testing.T) {
	cfg := testConfig()
	first := Classify(29.5, 3, cfg, 0.9)
	for i := 0; i < 100; i++ {
		if got := Classify(29.5, 3, cfg, 0.9); got != first {
			t.Fatalf("Classify not deterministic: %d then %d", first, got)
		}
	}
}
