package lod

import "time"

// Statistics is an immutable per-tick snapshot of grid LOD occupancy, the
// feedback signal for adaptive-quality consumers. Each tick produces a fresh
// value; no history is kept here.
type Statistics struct {
	CountsByLevel map[Level]int
	TotalCells    int
	LastUpdatedAt time.Time
}

// Aggregate reduces a per-cell level list into a snapshot. NoLevel entries
// (cells not yet evaluated) count toward TotalCells but not toward any level.
func Aggregate(levels []Level, now time.Time) Statistics {
	counts := make(map[Level]int)
	for _, l := range levels {
		if l == NoLevel {
			continue
		}
		counts[l]++
	}
	return Statistics{
		CountsByLevel: counts,
		TotalCells:    len(levels),
		LastUpdatedAt: now,
	}
}
