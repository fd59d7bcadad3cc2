package resize

import (
	"unsafe"

	"github.com/deepteams/zimg/internal/filter"
)

const int16Min = -32768

// unpackPixelU16 maps a uint16 sample into the signed accumulator
// domain used by the Q1.14 integer path, grounded on
// resize_impl2.cpp's unpack_pixel_u16.
func unpackPixelU16(x uint16) int32 {
	return int32(x) + int16Min
}

// packPixelU16 rounds a Q1.14 accumulator back to a clamped uint16
// sample, grounded on resize_impl2.cpp's pack_pixel_u16.
func packPixelU16(accum int32, pixelMax int32) uint16 {
	v := ((accum + (1 << (q114Shift - 1))) >> q114Shift) - int16Min
	if v < 0 {
		v = 0
	}
	if v > pixelMax {
		v = pixelMax
	}
	return uint16(v)
}

// ResizeH resizes along rows (horizontal), grounded on
// resize_impl2.cpp's ResizeImplH_C.
type ResizeH struct {
	ctx             *FilterContext
	srcWidth        int
	height          int
	pixelType       filter.PixelType
	pixelMax        int32
	sorted          bool
}

// NewResizeH builds a horizontal resize filter producing ctx.Height
// output columns per row from a plane srcWidth wide, height rows tall.
func NewResizeH(ctx *FilterContext, srcWidth, height int, pt filter.PixelType, pixelMax int32) *ResizeH {
	return &ResizeH{
		ctx: ctx, srcWidth: srcWidth, height: height,
		pixelType: pt, pixelMax: pixelMax, sorted: ctx.IsSorted(),
	}
}

func (f *ResizeH) Flags() filter.Flags {
	return filter.Flags{SameRow: true, EntireRow: !f.sorted}
}

func (f *ResizeH) ImageAttributes() filter.Attrs {
	return filter.Attrs{Width: f.ctx.Height, Height: f.height, Type: f.pixelType}
}

func (f *ResizeH) RequiredRowRange(i int) filter.Range { return filter.Range{First: i, Last: i + 1} }

func (f *ResizeH) RequiredColRange(left, right int) filter.Range {
	if !f.sorted {
		return filter.Range{First: 0, Last: f.srcWidth}
	}
	lo := f.ctx.Left[left]
	hi := f.ctx.Left[right-1] + f.ctx.Width
	if hi > f.srcWidth {
		hi = f.srcWidth
	}
	return filter.Range{First: lo, Last: hi}
}

func (f *ResizeH) SimultaneousLines() int     { return 1 }
func (f *ResizeH) MaxBuffering() int          { return 1 }
func (f *ResizeH) ContextSize() int           { return 0 }
func (f *ResizeH) TmpSize(left, right int) int { return 0 }
func (f *ResizeH) InitContext(ctx []byte)     {}

func (f *ResizeH) Process(ctx []byte, src, dst filter.Buffer, tmp []byte, i, left, right int) {
	srcRow := src[0].Data[src[0].Row(i):]
	dstRow := dst[0].Data[dst[0].Row(i):]

	switch f.pixelType {
	case filter.Word:
		srcSamples := unsafe.Slice((*uint16)(unsafe.Pointer(&srcRow[0])), f.srcWidth)
		dstSamples := unsafe.Slice((*uint16)(unsafe.Pointer(&dstRow[0])), f.ctx.Height)
		for j := left; j < right; j++ {
			coeffs := f.ctx.RowI16(j)
			base := f.ctx.Left[j]
			var accum int32
			for k, c := range coeffs {
				accum += int32(c) * unpackPixelU16(srcSamples[base+k])
			}
			dstSamples[j] = packPixelU16(accum, f.pixelMax)
		}
	default:
		srcSamples := unsafe.Slice((*float32)(unsafe.Pointer(&srcRow[0])), f.srcWidth)
		dstSamples := unsafe.Slice((*float32)(unsafe.Pointer(&dstRow[0])), f.ctx.Height)
		for j := left; j < right; j++ {
			coeffs := f.ctx.Row(j)
			base := f.ctx.Left[j]
			var accum float32
			for k, c := range coeffs {
				accum += c * srcSamples[base+k]
			}
			dstSamples[j] = accum
		}
	}
}

// ResizeV resizes along columns (vertical), grounded on
// resize_impl2.cpp's ResizeImplV_C.
type ResizeV struct {
	ctx       *FilterContext
	width     int
	srcHeight int
	pixelType filter.PixelType
	pixelMax  int32
	sorted    bool
}

// NewResizeV builds a vertical resize filter producing ctx.Height
// output rows, each width samples wide, from a plane srcHeight rows
// tall.
func NewResizeV(ctx *FilterContext, width, srcHeight int, pt filter.PixelType, pixelMax int32) *ResizeV {
	return &ResizeV{
		ctx: ctx, width: width, srcHeight: srcHeight,
		pixelType: pt, pixelMax: pixelMax, sorted: ctx.IsSorted(),
	}
}

func (f *ResizeV) Flags() filter.Flags {
	return filter.Flags{EntireRow: true, EntirePlane: !f.sorted}
}

func (f *ResizeV) ImageAttributes() filter.Attrs {
	return filter.Attrs{Width: f.width, Height: f.ctx.Height, Type: f.pixelType}
}

func (f *ResizeV) RequiredRowRange(i int) filter.Range {
	if !f.sorted {
		return filter.Range{First: 0, Last: f.srcHeight}
	}
	lo := f.ctx.Left[i]
	hi := lo + f.ctx.Width
	if hi > f.srcHeight {
		hi = f.srcHeight
	}
	return filter.Range{First: lo, Last: hi}
}

func (f *ResizeV) RequiredColRange(left, right int) filter.Range {
	return filter.Range{First: left, Last: right}
}

func (f *ResizeV) SimultaneousLines() int     { return 1 }
func (f *ResizeV) MaxBuffering() int          { return f.ctx.Width }
func (f *ResizeV) ContextSize() int           { return 0 }
func (f *ResizeV) TmpSize(left, right int) int { return 0 }
func (f *ResizeV) InitContext(ctx []byte)     {}

func (f *ResizeV) Process(ctx []byte, src, dst filter.Buffer, tmp []byte, i, left, right int) {
	coeffs := f.ctx.Row(i)
	coeffsI16 := f.ctx.RowI16(i)
	base := f.ctx.Left[i]
	dstRow := dst[0].Data[dst[0].Row(i):]

	switch f.pixelType {
	case filter.Word:
		dstSamples := unsafe.Slice((*uint16)(unsafe.Pointer(&dstRow[0])), f.width)
		for j := left; j < right; j++ {
			var accum int32
			for k, c := range coeffsI16 {
				row := src[0].Data[src[0].Row(base+k):]
				samples := unsafe.Slice((*uint16)(unsafe.Pointer(&row[0])), f.width)
				accum += int32(c) * unpackPixelU16(samples[j])
			}
			dstSamples[j] = packPixelU16(accum, f.pixelMax)
		}
	default:
		dstSamples := unsafe.Slice((*float32)(unsafe.Pointer(&dstRow[0])), f.width)
		for j := left; j < right; j++ {
			var accum float32
			for k, c := range coeffs {
				row := src[0].Data[src[0].Row(base+k):]
				samples := unsafe.Slice((*float32)(unsafe.Pointer(&row[0])), f.width)
				accum += c * samples[j]
			}
			dstSamples[j] = accum
		}
	}
}
