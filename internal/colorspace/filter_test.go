package colorspace

import (
	"math"
	"testing"
	"unsafe"

	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

func floatPlane(rows, cols int) zfilter.Plane {
	stride := cols * 4
	data := make([]byte, rows*stride)
	return zfilter.Plane{Data: data, Stride: stride, Mask: zfilter.NoFold}
}

func setRow(p zfilter.Plane, row int, vals []float32) {
	off := p.Row(row)
	dst := unsafe.Slice((*float32)(unsafe.Pointer(&p.Data[off])), len(vals))
	copy(dst, vals)
}

func readRow(p zfilter.Plane, row, n int) []float32 {
	off := p.Row(row)
	src := unsafe.Slice((*float32)(unsafe.Pointer(&p.Data[off])), n)
	out := make([]float32, n)
	copy(out, src)
	return out
}

func TestColorspaceFilterIdentityCopies(t *testing.T) {
	c := ztype.Colorspace{Matrix: ztype.MatrixRGB, Transfer: ztype.Transfer709, Primaries: ztype.Primaries709}
	f, err := New(4, 1, c, c)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(f.ops) != 0 {
		t.Fatalf("expected identity path, got %d ops", len(f.ops))
	}

	var src, dst zfilter.Buffer
	for p := 0; p < 3; p++ {
		src[p] = floatPlane(1, 4)
		dst[p] = floatPlane(1, 4)
		setRow(src[p], 0, []float32{1, 2, 3, 4})
	}

	f.Process(nil, src, dst, nil, 0, 0, 4)

	for p := 0; p < 3; p++ {
		got := readRow(dst[p], 0, 4)
		want := []float32{1, 2, 3, 4}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("plane %d[%d] = %v, want %v", p, i, got[i], want[i])
			}
		}
	}
}

func TestColorspaceFilterFlags(t *testing.T) {
	c := ztype.Colorspace{Matrix: ztype.MatrixRGB, Transfer: ztype.Transfer709, Primaries: ztype.Primaries709}
	f, err := New(4, 1, c, c)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fl := f.Flags()
	if !fl.SameRow || !fl.InPlace || !fl.Color {
		t.Errorf("flags = %+v, want same_row/in_place/color all true", fl)
	}
}

func TestColorspaceFilterYUVToRGBGrey(t *testing.T) {
	in := ztype.Colorspace{Matrix: ztype.Matrix709, Transfer: ztype.Transfer709, Primaries: ztype.Primaries709}
	out := ztype.Colorspace{Matrix: ztype.MatrixRGB, Transfer: ztype.Transfer709, Primaries: ztype.Primaries709}
	f, err := New(1, 1, in, out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var src, dst zfilter.Buffer
	for p := 0; p < 3; p++ {
		src[p] = floatPlane(1, 1)
		dst[p] = floatPlane(1, 1)
	}
	// mid-grey: Y=0.5, U=V=0 should map to R=G=B=0.5
	setRow(src[0], 0, []float32{0.5})
	setRow(src[1], 0, []float32{0})
	setRow(src[2], 0, []float32{0})

	f.Process(nil, src, dst, nil, 0, 0, 1)

	r := readRow(dst[0], 0, 1)[0]
	g := readRow(dst[1], 0, 1)[0]
	b := readRow(dst[2], 0, 1)[0]
	if math.Abs(float64(r-0.5)) > 1e-5 || math.Abs(float64(g-0.5)) > 1e-5 || math.Abs(float64(b-0.5)) > 1e-5 {
		t.Errorf("grey YUV->RGB = (%v,%v,%v), want (0.5,0.5,0.5)", r, g, b)
	}
}
