// Package depth implements the depth/dither conversion kernel: affine
// integer<->float rescaling and the three dither regimes.
package depth

import (
	"math"

	"github.com/deepteams/zimg/internal/ztype"
)

// toFloatScale returns the (scale, offset) affine pair mapping a pixel
// of format f to a normalized float: scale = 1/range, offset =
// -format_offset/range. Half/Float formats are already normalized
// floats and pass through unchanged.
func toFloatScale(f ztype.PixelFormat) (scale, offset float64) {
	if f.Type.IsFloat() {
		return 1, 0
	}
	rg := float64(f.IntegerRange())
	return 1 / rg, -float64(f.IntegerOffset()) / rg
}

// fromFloatScale returns the (scale, offset) affine pair mapping a
// normalized float to a pixel of format f, the inverse of
// toFloatScale.
func fromFloatScale(f ztype.PixelFormat) (scale, offset float64) {
	if f.Type.IsFloat() {
		return 1, 0
	}
	return float64(f.IntegerRange()), float64(f.IntegerOffset())
}

// combinedScale composes in's to-float map with out's from-float map,
// yielding the single affine transform used by the integer<->integer
// and integer<->half/float dither paths.
func combinedScale(in, out ztype.PixelFormat) (scale, offset float64) {
	s1, o1 := toFloatScale(in)
	s2, o2 := fromFloatScale(out)
	return s1 * s2, o1*s2 + o2
}

func clampInt(x, lo, hi int32) int32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func roundNearest(x float64) float64 {
	return math.Floor(x + 0.5)
}
