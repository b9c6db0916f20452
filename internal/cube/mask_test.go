package cube

import "testing"

// TestParseMaskSides verifies each side maps to the documented axis/window.
func TestParseMaskSides(t *testing.T) {
	tests := []struct {
		mask string
		want MaskRange
	}{
		{"bottom_40%", MaskRange{Start: 0, End: 0.4, Axis: 0}},
		{"top_60%", MaskRange{Start: 0.4, End: 1, Axis: 0}},
		{"left_30%", MaskRange{Start: 0, End: 0.3, Axis: 1}},
		{"right_50%", MaskRange{Start: 0.5, End: 1, Axis: 1}},
		{"front_25%", MaskRange{Start: 0, End: 0.25, Axis: 2}},
		{"back_75%", MaskRange{Start: 0.25, End: 1, Axis: 2}},
	}
	for _, tt := range tests {
		got := ParseMask(tt.mask)
		if !approxMask(got, tt.want) {
			t.Errorf("ParseMask(%q) = %+v, want %+v", tt.mask, got, tt.want)
		}
	}
}

// TestParseMaskTotal verifies malformed input always resolves to the full
// range instead of failing.
func TestParseMaskTotal(t *testing.T) {
	full := MaskRange{Start: 0, End: 1, Axis: 0}
	for _, mask := range []string{
		"",
		"garbage",
		"bottom",
		"bottom_40",
		"bottom_%",
		"bottom_abc%",
		"bottom_140%",
		"bottom_-10%",
		"diagonal_40%",
		"_40%",
	} {
		if got := ParseMask(mask); got != full {
			t.Errorf("ParseMask(%q) = %+v, want full range %+v", mask, got, full)
		}
	}
}

// TestParseMaskBoundaryPercents checks the 0% and 100% extremes.
func TestParseMaskBoundaryPercents(t *testing.T) {
	if got := ParseMask("bottom_0%"); !approxMask(got, MaskRange{Start: 0, End: 0, Axis: 0}) {
		t.Errorf("ParseMask(bottom_0%%) = %+v", got)
	}
	if got := ParseMask("top_100%"); !approxMask(got, MaskRange{Start: 0, End: 1, Axis: 0}) {
		t.Errorf("ParseMask(top_100%%) = %+v", got)
	}
}

func approxMask(a, b MaskRange) bool {
	const eps = 1e-6
	diff := func(x, y float32) float32 {
		if x > y {
			return x - y
		}
		return y - x
	}
	return a.Axis == b.Axis && diff(a.Start, b.Start) < eps && diff(a.End, b.End) < eps
}
