package unresize

import (
	"math"
	"testing"
	"unsafe"

	zfilter "github.com/deepteams/zimg/internal/filter"
)

func floatPlane(rows, cols int) zfilter.Plane {
	stride := cols * 4
	return zfilter.Plane{Data: make([]byte, rows*stride), Stride: stride, Mask: zfilter.NoFold}
}

func setFloatRow(p zfilter.Plane, row int, vals []float32) {
	off := p.Row(row)
	dst := unsafe.Slice((*float32)(unsafe.Pointer(&p.Data[off])), len(vals))
	copy(dst, vals)
}

func readFloatRow(p zfilter.Plane, row, n int) []float32 {
	off := p.Row(row)
	return unsafe.Slice((*float32)(unsafe.Pointer(&p.Data[off])), n)
}

func TestBilinearWeightsRowsSumToOne(t *testing.T) {
	m := bilinearWeights(10, 20, 0)
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			sum += m.At(i, j)
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("row %d sums to %v, want 1", i, sum)
		}
	}
}

func TestNewBilinearContextDims(t *testing.T) {
	ctx := NewBilinearContext(10, 20, 0)
	if ctx.InputWidth != 20 {
		t.Errorf("InputWidth = %d, want 20", ctx.InputWidth)
	}
	if ctx.OutputWidth != 10 {
		t.Errorf("OutputWidth = %d, want 10", ctx.OutputWidth)
	}
}

func TestHorizontalRecoversConstantSignal(t *testing.T) {
	// A constant-valued upsampled row should unresize back to the same
	// constant: the least-squares solve of a constant source against a
	// row-stochastic bilinear matrix is the identity on constants.
	ctx := NewBilinearContext(5, 16, 0)
	f := NewHorizontal(ctx, 1)

	var src, dst zfilter.Buffer
	src[0] = floatPlane(1, 16)
	dst[0] = floatPlane(1, 5)

	vals := make([]float32, 16)
	for i := range vals {
		vals[i] = 0.75
	}
	setFloatRow(src[0], 0, vals)

	f.Process(nil, src, dst, nil, 0, 0, 5)

	got := readFloatRow(dst[0], 0, 5)
	for i, v := range got {
		if math.Abs(float64(v)-0.75) > 1e-3 {
			t.Errorf("sample %d = %v, want ~0.75", i, v)
		}
	}
}

func TestVerticalRecoversConstantSignal(t *testing.T) {
	ctx := NewBilinearContext(5, 16, 0)
	f := NewVertical(ctx, 3)

	var src, dst zfilter.Buffer
	src[0] = floatPlane(16, 3)
	dst[0] = floatPlane(5, 3)

	for r := 0; r < 16; r++ {
		setFloatRow(src[0], r, []float32{0.25, 0.25, 0.25})
	}

	f.Process(nil, src, dst, nil, 0, 0, 3)

	for r := 0; r < 5; r++ {
		row := readFloatRow(dst[0], r, 3)
		for _, v := range row {
			if math.Abs(float64(v)-0.25) > 1e-3 {
				t.Errorf("row %d = %v, want ~0.25", r, row)
			}
		}
	}
}

func TestHorizontalFlagsStateless(t *testing.T) {
	ctx := NewBilinearContext(5, 16, 0)
	f := NewHorizontal(ctx, 4)
	flags := f.Flags()
	if flags.HasState {
		t.Error("Horizontal should not require state")
	}
	if !flags.SameRow || !flags.EntireRow {
		t.Errorf("unexpected flags: %+v", flags)
	}
}

func TestVerticalFlagsStateful(t *testing.T) {
	ctx := NewBilinearContext(5, 16, 0)
	f := NewVertical(ctx, 4)
	flags := f.Flags()
	if !flags.HasState || !flags.EntirePlane {
		t.Errorf("unexpected flags: %+v", flags)
	}
}
