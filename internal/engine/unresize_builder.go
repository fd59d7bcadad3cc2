package engine

import (
	"github.com/deepteams/zimg/internal/alloc"
	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/unresize"
)

// UnresizeGraph recovers a plane that was previously upsampled by a
// separable bilinear resize, inverting it via unresize's forward/back
// substitution passes. It is a separate entry point from New: the
// automatic builder's loop only ever attaches resize stages toward a
// requested destination format, never an unresize, since unresize is a
// deliberate request to invert a known prior resize rather than a step
// on the path to some target ImageFormat.
type UnresizeGraph struct {
	horizontal *unresize.Horizontal
	vertical   *unresize.Vertical

	srcWidth, srcHeight int
	dstWidth, dstHeight int

	midStride int
	tmpSize   int
}

// NewUnresizeGraph builds the horizontal and vertical inverse-bilinear
// passes recovering a srcWidth x srcHeight plane from one previously
// upsampled to dstWidth x dstHeight. The horizontal pass runs first,
// narrowing each of the dstHeight rows from dstWidth down to srcWidth;
// the vertical pass then narrows that intermediate plane's dstHeight
// rows down to srcHeight, matching the axis order unresize_impl.cpp's
// UnresizeImplH / UnresizeImplV are composed in.
func NewUnresizeGraph(srcWidth, srcHeight, dstWidth, dstHeight int, shiftW, shiftH float64) (*UnresizeGraph, error) {
	if srcWidth <= 0 || srcHeight <= 0 || dstWidth <= 0 || dstHeight <= 0 {
		return nil, illegalArgument("unresize: non-positive dimensions")
	}
	if dstWidth < srcWidth || dstHeight < srcHeight {
		return nil, unsupported("unresize: target dimensions %dx%d must be >= source %dx%d", dstWidth, dstHeight, srcWidth, srcHeight)
	}

	hctx := unresize.NewBilinearContext(srcWidth, dstWidth, shiftW)
	h := unresize.NewHorizontal(hctx, dstHeight)

	vctx := unresize.NewBilinearContext(srcHeight, dstHeight, shiftH)
	v := unresize.NewVertical(vctx, srcWidth)

	midStride := alloc.Align(srcWidth * zfilter.Float.Size())
	midSize := midStride * dstHeight

	return &UnresizeGraph{
		horizontal: h,
		vertical:   v,
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		dstWidth:   dstWidth,
		dstHeight:  dstHeight,
		midStride:  midStride,
		tmpSize:    midSize,
	}, nil
}

// GetTmpSize returns the size in bytes the buffer passed to Process
// must provide.
func (g *UnresizeGraph) GetTmpSize() int { return g.tmpSize }

// Process inverts a dstWidth x dstHeight bilinear upsample of a single
// float32 plane in src into a srcWidth x srcHeight plane in dst. tmp
// must be at least GetTmpSize() bytes; it holds the intermediate
// dstHeight x srcWidth plane between the horizontal and vertical
// passes.
func (g *UnresizeGraph) Process(src, dst zfilter.Buffer, tmp []byte) error {
	mid := zfilter.Plane{Data: tmp[:g.midStride*g.dstHeight], Stride: g.midStride, Mask: zfilter.NoFold}
	midBuf := singlePlane(mid)

	for i := 0; i < g.dstHeight; i++ {
		g.horizontal.Process(nil, src, midBuf, nil, i, 0, g.srcWidth)
	}

	g.vertical.Process(nil, midBuf, dst, nil, 0, 0, g.srcWidth)

	return nil
}
