package cube

import (
	"strconv"
	"strings"
)

// MaskRange restricts noise to a window along one local axis. Axis encoding:
// 0 = Y (bottom/top), 1 = X (left/right), 2 = Z (front/back). Start and End
// are fractions of the cube's extent along that axis.
type MaskRange struct {
	Start float32
	End   float32
	Axis  int32
}

// fullRange covers the whole cube; every unrecognized mask resolves to it.
var fullRange = MaskRange{Start: 0, End: 1, Axis: 0}

// ParseMask decodes a "<side>_<percent>%" mask string, e.g. "bottom_40%"
// → the lower 40% of the Y axis, "right_50%" → the upper half of the X axis.
// Total function: an empty or unrecognized mask yields the full range.
func ParseMask(mask string) MaskRange {
	if mask == "" {
		return fullRange
	}
	sep := strings.LastIndexByte(mask, '_')
	if sep < 0 || !strings.HasSuffix(mask, "%") {
		return fullRange
	}
	pct, err := strconv.ParseFloat(mask[sep+1:len(mask)-1], 32)
	if err != nil || pct < 0 || pct > 100 {
		return fullRange
	}
	f := float32(pct) / 100

	switch mask[:sep] {
	case "bottom":
		return MaskRange{Start: 0, End: f, Axis: 0}
	case "top":
		return MaskRange{Start: 1 - f, End: 1, Axis: 0}
	case "left":
		return MaskRange{Start: 0, End: f, Axis: 1}
	case "right":
		return MaskRange{Start: 1 - f, End: 1, Axis: 1}
	case "front":
		return MaskRange{Start: 0, End: f, Axis: 2}
	case "back":
		return MaskRange{Start: 1 - f, End: 1, Axis: 2}
	}
	return fullRange
}
