package resize

import (
	"math"
	"testing"
)

func TestPointKernelSupport(t *testing.T) {
	if Point.Support() != 0 {
		t.Errorf("Point.Support() = %d, want 0", Point.Support())
	}
	if Point.Eval(0.3) != 1.0 {
		t.Errorf("Point.Eval(0.3) = %v, want 1.0", Point.Eval(0.3))
	}
}

func TestBilinearKernel(t *testing.T) {
	if Bilinear.Support() != 1 {
		t.Errorf("Bilinear.Support() = %d, want 1", Bilinear.Support())
	}
	cases := []struct {
		x, want float64
	}{
		{0, 1}, {0.5, 0.5}, {1, 0}, {2, 0}, {-0.5, 0.5},
	}
	for _, c := range cases {
		got := Bilinear.Eval(c.x)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Bilinear.Eval(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestBicubicMitchellAtZero(t *testing.T) {
	k := NewBicubic(1.0/3, 1.0/3)
	if k.Support() != 2 {
		t.Errorf("Bicubic.Support() = %d, want 2", k.Support())
	}
	got := k.Eval(0)
	if math.Abs(got-k.p0) > 1e-9 {
		t.Errorf("Bicubic.Eval(0) = %v, want p0 = %v", got, k.p0)
	}
	if got := k.Eval(2.5); got != 0 {
		t.Errorf("Bicubic.Eval(2.5) = %v, want 0 (outside support)", got)
	}
}

func TestSpline16ContinuousAtJoin(t *testing.T) {
	left := Spline16.Eval(0.999999)
	right := Spline16.Eval(1.000001)
	if math.Abs(left-right) > 1e-4 {
		t.Errorf("Spline16 discontinuous at x=1: %v vs %v", left, right)
	}
}

func TestSpline36Support(t *testing.T) {
	if Spline36.Support() != 3 {
		t.Errorf("Spline36.Support() = %d, want 3", Spline36.Support())
	}
	if got := Spline36.Eval(3.5); got != 0 {
		t.Errorf("Spline36.Eval(3.5) = %v, want 0", got)
	}
}

func TestLanczosZeroCrossings(t *testing.T) {
	k := Lanczos{Taps: 3}
	if k.Support() != 3 {
		t.Errorf("Lanczos.Support() = %d, want 3", k.Support())
	}
	if got := k.Eval(0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Lanczos.Eval(0) = %v, want 1", got)
	}
	// sinc has zeros at non-zero integers within support.
	for _, x := range []float64{1, 2} {
		got := k.Eval(x)
		if math.Abs(got) > 1e-9 {
			t.Errorf("Lanczos.Eval(%v) = %v, want ~0", x, got)
		}
	}
}

func TestComputeFilterRowsSumToOne(t *testing.T) {
	ctx, err := ComputeFilter(Bilinear, 100, 50, 0, 50)
	if err != nil {
		t.Fatalf("ComputeFilter: %v", err)
	}
	if ctx.Height != 50 {
		t.Fatalf("ctx.Height = %d, want 50", ctx.Height)
	}
	for i := 0; i < ctx.Height; i++ {
		row := ctx.Row(i)
		var sum float32
		for _, c := range row {
			sum += c
		}
		if math.Abs(float64(sum)-1.0) > 1e-4 {
			t.Errorf("row %d sums to %v, want ~1", i, sum)
		}
		if ctx.Left[i] < 0 || ctx.Left[i]+ctx.Width > 100 {
			t.Errorf("row %d window [%d,%d) out of [0,100)", i, ctx.Left[i], ctx.Left[i]+ctx.Width)
		}
	}
}

func TestComputeFilterUpscale(t *testing.T) {
	ctx, err := ComputeFilter(NewBicubic(1.0/3, 1.0/3), 10, 20, 0, 10)
	if err != nil {
		t.Fatalf("ComputeFilter: %v", err)
	}
	if ctx.Height != 20 {
		t.Fatalf("ctx.Height = %d, want 20", ctx.Height)
	}
	for i := 0; i < ctx.Height; i++ {
		var sum float32
		for _, c := range ctx.Row(i) {
			sum += c
		}
		if math.Abs(float64(sum)-1.0) > 1e-3 {
			t.Errorf("row %d sums to %v, want ~1", i, sum)
		}
	}
}

func TestComputeFilterRejectsOversizedShift(t *testing.T) {
	if _, err := ComputeFilter(Bilinear, 10, 10, 20, 10); err == nil {
		t.Error("expected error for out-of-bounds shift")
	}
}

func TestComputeFilterQ14RoundTrip(t *testing.T) {
	ctx, err := ComputeFilter(Bilinear, 20, 10, 0, 10)
	if err != nil {
		t.Fatalf("ComputeFilter: %v", err)
	}
	for i := 0; i < ctx.Height; i++ {
		row := ctx.Row(i)
		rowI16 := ctx.RowI16(i)
		for k, c := range row {
			want := math.Round(float64(c) * q114One)
			got := float64(rowI16[k])
			if math.Abs(got-want) > 1 {
				t.Errorf("row %d tap %d: i16=%v, want ~%v", i, k, got, want)
			}
		}
	}
}

func TestIsSortedDetectsMonotoneLeft(t *testing.T) {
	ctx, err := ComputeFilter(Bilinear, 100, 50, 0, 50)
	if err != nil {
		t.Fatalf("ComputeFilter: %v", err)
	}
	if !ctx.IsSorted() {
		t.Error("expected monotone filter to be sorted")
	}
	ctx.Left[len(ctx.Left)-1] = -1000
	if ctx.IsSorted() {
		t.Error("expected tampered Left to be detected as unsorted")
	}
}

func TestPackUnpackPixelU16RoundTrip(t *testing.T) {
	for _, x := range []uint16{0, 1, 255, 1000, 65535} {
		accum := unpackPixelU16(x) * q114One
		got := packPixelU16(accum, 65535)
		if got != x {
			t.Errorf("round trip %d -> %d, want %d", x, got, x)
		}
	}
}

func TestPackPixelU16Clamps(t *testing.T) {
	if got := packPixelU16(int32(-1000000000), 255); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
	if got := packPixelU16(int32(1000000000), 255); got != 255 {
		t.Errorf("expected clamp to 255, got %d", got)
	}
}
