package unresize

import (
	"unsafe"

	"github.com/deepteams/zimg/internal/filter"
)

// Horizontal unresizes each row independently, grounded on
// unresize_impl.cpp's UnresizeImplH / unresize_line_h_f32_c. Only
// float32 samples are supported, matching the original's FLOAT-only
// restriction.
type Horizontal struct {
	ctx    *BilinearContext
	height int
}

// NewHorizontal builds a horizontal unresize filter over a plane of
// the given height.
func NewHorizontal(ctx *BilinearContext, height int) *Horizontal {
	return &Horizontal{ctx: ctx, height: height}
}

func (f *Horizontal) Flags() filter.Flags {
	return filter.Flags{SameRow: true, EntireRow: true}
}

func (f *Horizontal) ImageAttributes() filter.Attrs {
	return filter.Attrs{Width: f.ctx.OutputWidth, Height: f.height, Type: filter.Float}
}

func (f *Horizontal) RequiredRowRange(i int) filter.Range { return filter.Range{First: i, Last: i + 1} }
func (f *Horizontal) RequiredColRange(left, right int) filter.Range {
	return filter.Range{First: 0, Last: f.ctx.InputWidth}
}
func (f *Horizontal) SimultaneousLines() int     { return 1 }
func (f *Horizontal) MaxBuffering() int          { return 1 }
func (f *Horizontal) ContextSize() int           { return 0 }
func (f *Horizontal) TmpSize(left, right int) int { return 0 }
func (f *Horizontal) InitContext(ctx []byte)     {}

func floatsOf(row []byte, n int) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(&row[0])), n)
}

func (f *Horizontal) Process(ctx []byte, src, dst filter.Buffer, tmp []byte, i, left, right int) {
	srcRow := floatsOf(src[0].Data[src[0].Row(i):], f.ctx.InputWidth)
	dstRow := floatsOf(dst[0].Data[dst[0].Row(i):], f.ctx.OutputWidth)

	n := f.ctx.OutputWidth
	c, l, u := f.ctx.lu.c, f.ctx.lu.l, f.ctx.lu.u

	var z float64
	for j := 0; j < n; j++ {
		coeffs, off := f.ctx.row(j)
		var accum float64
		for k, w := range coeffs {
			accum += w * float64(srcRow[off+k])
		}
		z = (accum - c[j]*z) * l[j]
		dstRow[j] = float32(z)
	}

	var w float64
	for j := n; j != 0; j-- {
		w = float64(dstRow[j-1]) - u[j-1]*w
		dstRow[j-1] = float32(w)
	}
}

// Vertical unresizes along columns, grounded on unresize_impl.cpp's
// UnresizeImplV / unresize_line_forward_v_f32_c /
// unresize_line_back_v_f32_c. Because the backward substitution sweep
// must see every forward-substituted row before it can run, Vertical
// is stateful over the whole plane and processes it in a single call.
type Vertical struct {
	ctx   *BilinearContext
	width int
}

// NewVertical builds a vertical unresize filter over a plane of the
// given width.
func NewVertical(ctx *BilinearContext, width int) *Vertical {
	return &Vertical{ctx: ctx, width: width}
}

func (f *Vertical) Flags() filter.Flags {
	return filter.Flags{HasState: true, EntireRow: true, EntirePlane: true}
}

func (f *Vertical) ImageAttributes() filter.Attrs {
	return filter.Attrs{Width: f.width, Height: f.ctx.OutputWidth, Type: filter.Float}
}

func (f *Vertical) RequiredRowRange(i int) filter.Range {
	return filter.Range{First: 0, Last: f.ctx.InputWidth}
}
func (f *Vertical) RequiredColRange(left, right int) filter.Range {
	return filter.Range{First: left, Last: right}
}
func (f *Vertical) SimultaneousLines() int     { return f.ctx.OutputWidth }
func (f *Vertical) MaxBuffering() int          { return f.ctx.OutputWidth }
func (f *Vertical) ContextSize() int           { return 0 }
func (f *Vertical) TmpSize(left, right int) int { return 0 }
func (f *Vertical) InitContext(ctx []byte)     {}

func (f *Vertical) Process(ctx []byte, src, dst filter.Buffer, tmp []byte, i, left, right int) {
	height := f.ctx.OutputWidth
	c, l, u := f.ctx.lu.c, f.ctx.lu.l, f.ctx.lu.u

	for row := 0; row < height; row++ {
		coeffs, top := f.ctx.row(row)
		dstRow := floatsOf(dst[0].Data[dst[0].Row(row):], f.width)

		for j := left; j < right; j++ {
			var z float64
			if row > 0 {
				prevRow := floatsOf(dst[0].Data[dst[0].Row(row-1):], f.width)
				z = float64(prevRow[j])
			}

			var accum float64
			for k, w := range coeffs {
				srcRow := floatsOf(src[0].Data[src[0].Row(top+k):], f.width)
				accum += w * float64(srcRow[j])
			}

			z = (accum - c[row]*z) * l[row]
			dstRow[j] = float32(z)
		}
	}

	for row := height; row != 0; row-- {
		dstCur := floatsOf(dst[0].Data[dst[0].Row(row-1):], f.width)
		for j := left; j < right; j++ {
			var w float64
			if row < height {
				nextRow := floatsOf(dst[0].Data[dst[0].Row(row):], f.width)
				w = float64(nextRow[j])
			}
			w = float64(dstCur[j]) - u[row-1]*w
			dstCur[j] = float32(w)
		}
	}
}
