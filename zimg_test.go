package zimg_test

import (
	"errors"
	"testing"

	"github.com/deepteams/zimg"
)

func greyFormat(w, h int, t zimg.PixelType) zimg.ImageFormat {
	return zimg.ImageFormat{
		Width: w, Height: h,
		PixelType: t, Depth: t.BitWidth(), FullRange: true,
		ColorFamily: zimg.ColorGrey,
	}
}

func bytePlane(rows, cols int) zimg.Plane {
	return zimg.Plane{Data: make([]byte, rows*cols), Stride: cols, Mask: zimg.NoFold}
}

// A plain downscale into a narrower integer depth is the conversion
// shape that once crashed inside the resize/depth pairing: a resize
// stage producing wide intermediate samples feeding directly into an
// in-place depth narrowing stage.
func TestFilterGraphResizeThenDepthNarrow(t *testing.T) {
	src := greyFormat(8, 8, zimg.Word)
	dst := greyFormat(4, 4, zimg.Byte)

	g, err := zimg.NewFilterGraph(src, dst, zimg.DefaultFilterGraphParams())
	if err != nil {
		t.Fatalf("NewFilterGraph: %v", err)
	}

	var srcBuf, dstBuf zimg.ImageBuffer
	srcBuf[0] = zimg.Plane{Data: make([]byte, 8*8*2), Stride: 8 * 2, Mask: zimg.NoFold}
	dstBuf[0] = bytePlane(4, 4)

	tmp := make([]byte, g.GetTmpSize())
	if err := g.Process(srcBuf, dstBuf, tmp, nil, nil); err != nil {
		t.Fatalf("Process: %v", err)
	}
}

func TestFilterGraphIdentityRoundTrip(t *testing.T) {
	f := greyFormat(4, 4, zimg.Byte)
	g, err := zimg.NewFilterGraph(f, f, zimg.DefaultFilterGraphParams())
	if err != nil {
		t.Fatalf("NewFilterGraph: %v", err)
	}

	var src, dst zimg.ImageBuffer
	src[0] = bytePlane(4, 4)
	dst[0] = bytePlane(4, 4)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
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

func TestNewFilterGraphRejectsFieldParityChange(t *testing.T) {
	src := greyFormat(4, 4, zimg.Byte)
	dst := src
	dst.FieldParity = zimg.FieldTop

	_, err := zimg.NewFilterGraph(src, dst, zimg.DefaultFilterGraphParams())
	if err == nil {
		t.Fatal("expected an error for a field parity change")
	}
	var ze *zimg.Error
	if !errors.As(err, &ze) {
		t.Fatalf("err = %T, want one wrapping *zimg.Error", err)
	}
	if ze.Code != zimg.IllegalArgument {
		t.Errorf("code = %v, want IllegalArgument", ze.Code)
	}
}

func TestUnresizeGraphRoundTrip(t *testing.T) {
	g, err := zimg.NewUnresizeGraph(4, 4, 8, 8, 0, 0)
	if err != nil {
		t.Fatalf("NewUnresizeGraph: %v", err)
	}

	floatPlane := func(rows, cols int) zimg.Plane {
		stride := cols * 4
		return zimg.Plane{Data: make([]byte, rows*stride), Stride: stride, Mask: zimg.NoFold}
	}

	var src, dst zimg.ImageBuffer
	src[0] = floatPlane(8, 8)
	dst[0] = floatPlane(4, 4)

	tmp := make([]byte, g.GetTmpSize())
	if err := g.Process(src, dst, tmp); err != nil {
		t.Fatalf("Process: %v", err)
	}
}

func TestNewUnresizeGraphRejectsShrink(t *testing.T) {
	_, err := zimg.NewUnresizeGraph(8, 8, 4, 4, 0, 0)
	if err == nil {
		t.Fatal("expected an error when target is smaller than source")
	}
}
