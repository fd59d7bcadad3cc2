package halffloat

import (
	"math"
	"testing"
)

func TestRoundTripCommonValues(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 2, 65504, -65504, 0.000244140625} {
		h := FromFloat32(f)
		got := ToFloat32(h)
		if got != f {
			t.Errorf("round trip %v -> %#04x -> %v", f, h, got)
		}
	}
}

func TestZero(t *testing.T) {
	if ToFloat32(0) != 0 {
		t.Error("ToFloat32(0) != 0")
	}
	if FromFloat32(0) != 0 {
		t.Error("FromFloat32(0) != 0")
	}
}

func TestInfinity(t *testing.T) {
	h := FromFloat32(1e38)
	if ToFloat32(h) != float32(math.Inf(1)) {
		t.Error("expected +Inf to saturate")
	}
}
