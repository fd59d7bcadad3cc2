package engine

import (
	"testing"

	"github.com/pkg/errors"

	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

func bytePlane(rows, cols int) zfilter.Plane {
	return zfilter.Plane{Data: make([]byte, rows*cols), Stride: cols, Mask: zfilter.NoFold}
}

// An identity conversion (matching source and destination formats)
// should copy every sample through unchanged.
func TestProcessIdentityGreyRoundTrip(t *testing.T) {
	f := greyByteFormat(4, 3)
	g, err := New(f, f, DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var src, dst zfilter.Buffer
	src[0] = bytePlane(3, 4)
	dst[0] = bytePlane(3, 4)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	copy(src[0].Data, want)

	tmp := make([]byte, g.GetTmpSize())
	if err := g.Process(src, dst, tmp, nil, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
	for i, w := range want {
		if dst[0].Data[i] != w {
			t.Errorf("dst[%d] = %d, want %d", i, dst[0].Data[i], w)
		}
	}
}

// Callbacks must fire once per row group consumed/produced, and a
// non-nil error must abort the call wrapped as UserCallbackFailed.
func TestProcessCallbackFailureAborts(t *testing.T) {
	f := greyByteFormat(4, 2)
	g, err := New(f, f, DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var src, dst zfilter.Buffer
	src[0] = bytePlane(2, 4)
	dst[0] = bytePlane(2, 4)

	tmp := make([]byte, g.GetTmpSize())
	boom := func(i, left, right int) error { return errBoom }
	err = g.Process(src, dst, tmp, nil, boom)
	if err == nil {
		t.Fatal("expected an error from the failing pack callback")
	}
	var ee *Error
	if !errors.As(err, &ee) {
		t.Fatalf("err = %T, want one wrapping *Error", err)
	}
	if ee.Code != UserCallbackFailed {
		t.Errorf("code = %v, want UserCallbackFailed", ee.Code)
	}
}

var errBoom = plainError("boom")

type plainError string

func (e plainError) Error() string { return string(e) }

// Depth narrowing from Word to Byte across a color image exercises
// both luma and chroma post stages together.
func TestProcessYUVDepthNarrowing(t *testing.T) {
	src := ztype.ImageFormat{
		Width: 4, Height: 2,
		PixelType: ztype.Word, Depth: 16, FullRange: true,
		ColorFamily: ztype.ColorYUV, Colorspace: bt709(),
	}
	dst := src
	dst.PixelType = ztype.Byte
	dst.Depth = 8

	g, err := New(src, dst, DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	mkWordPlane := func(rows, cols int) zfilter.Plane {
		return zfilter.Plane{Data: make([]byte, rows*cols*2), Stride: cols * 2, Mask: zfilter.NoFold}
	}
	mkBytePlane := func(rows, cols int) zfilter.Plane {
		return zfilter.Plane{Data: make([]byte, rows*cols), Stride: cols, Mask: zfilter.NoFold}
	}

	var srcBuf, dstBuf zfilter.Buffer
	for p := 0; p < 3; p++ {
		srcBuf[p] = mkWordPlane(2, 4)
		dstBuf[p] = mkBytePlane(2, 4)
	}

	tmp := make([]byte, g.GetTmpSize())
	if err := g.Process(srcBuf, dstBuf, tmp, nil, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
}

func TestUnresizeGraphRoundTrip(t *testing.T) {
	g, err := NewUnresizeGraph(4, 4, 8, 8, 0, 0)
	if err != nil {
		t.Fatalf("NewUnresizeGraph: %v", err)
	}

	floatPlane := func(rows, cols int) zfilter.Plane {
		stride := cols * 4
		return zfilter.Plane{Data: make([]byte, rows*stride), Stride: stride, Mask: zfilter.NoFold}
	}

	var src, dst zfilter.Buffer
	src[0] = floatPlane(8, 8)
	dst[0] = floatPlane(4, 4)

	tmp := make([]byte, g.GetTmpSize())
	if err := g.Process(src, dst, tmp); err != nil {
		t.Fatalf("Process: %v", err)
	}
}

func TestNewUnresizeGraphRejectsShrink(t *testing.T) {
	if _, err := NewUnresizeGraph(8, 8, 4, 4, 0, 0); err == nil {
		t.Fatal("expected an error when target is smaller than source")
	}
}
