package lod

import "time"

// CellState tracks the last classification of one grid cell. Entries start
// zero-valued and record their first evaluation whenever the owning grid
// first ticks them, so creation is effectively lazy.
type CellState struct {
	Level           Level
	LastEvaluatedAt time.Time
	Evaluated       bool
}

// ShouldEvaluate reports whether enough wall time has passed since the last
// evaluation. A never-evaluated state is always due. This gate decouples LOD
// recomputation from render-frame cadence: a cell is classified at most once
// per interval regardless of how often the grid ticks.
func (s *CellState) ShouldEvaluate(now time.Time, intervalSeconds float64) bool {
	if !s.Evaluated {
		return true
	}
	return now.Sub(s.LastEvaluatedAt).Seconds() >= intervalSeconds
}

// Record stores the outcome of an evaluation.
func (s *CellState) Record(level Level, now time.Time) {
	s.Level = level
	s.LastEvaluatedAt = now
	s.Evaluated = true
}

// Previous returns the level to feed the classifier's hysteresis, or NoLevel
// when the cell has never been evaluated.
func (s *CellState) Previous() Level {
	if !s.Evaluated {
		return NoLevel
	}
	return s.Level
}
