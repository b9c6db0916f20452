package lod

// Classify picks the detail level for a cell at the given camera distance.
//
// The raw level is the smallest L with distance < thresholds[L]; a distance
// beyond every threshold lands on the maximal level. qualityScale multiplies
// every threshold before comparison (a factor < 1 pulls coarser levels
// closer, the constrained-device case); values <= 0 are treated as 1.
//
// Hysteresis: when the raw level differs from previous but the distance sits
// within HysteresisMargin of the nearest threshold crossed by that move, the
// previous level is retained. Pass NoLevel as previous on first evaluation
// to skip hysteresis entirely. Deterministic for identical inputs.
func Classify(distance float32, previous Level, cfg Config, qualityScale float32) Level {
	if qualityScale <= 0 {
		qualityScale = 1
	}

	raw := cfg.MaxLevel()
	for i, t := range cfg.DistanceThresholds {
		if distance < t*qualityScale {
			raw = Level(i)
			break
		}
	}

	if previous == NoLevel || raw == previous || cfg.HysteresisMargin <= 0 {
		return raw
	}
	if previous < 0 || previous > cfg.MaxLevel() {
		return raw
	}

	// Thresholds crossed moving from previous to raw are indices
	// [min, max); the one nearest the current distance decides.
	lo, hi := previous, raw
	if hi < lo {
		lo, hi = hi, lo
	}
	nearest := float32(-1)
	for i := lo; i < hi; i++ {
		t := cfg.DistanceThresholds[i] * qualityScale
		d := distance - t
		if d < 0 {
			d = -d
		}
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}
	if nearest >= 0 && nearest <= cfg.HysteresisMargin {
		return previous
	}
	return raw
}
