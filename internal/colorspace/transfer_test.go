package colorspace

import (
	"math"
	"testing"
)

func TestTransferRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.001, transferBeta, 0.5, 1.0} {
		y := rec709Gamma(x)
		back := rec709InverseGamma(y)
		if math.Abs(back-x) > 1e-9 {
			t.Errorf("round trip %v -> %v -> %v", x, y, back)
		}
	}
}

func TestTransferContinuousAtBreakpoint(t *testing.T) {
	below := rec709Gamma(transferBeta - 1e-9)
	above := rec709Gamma(transferBeta + 1e-9)
	if math.Abs(above-below) > 1e-6 {
		t.Errorf("discontinuity at beta: %v vs %v", below, above)
	}
}
