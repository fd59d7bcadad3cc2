package depth

import (
	"unsafe"

	"github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

// errorDiffusionFilter implements Floyd-Steinberg error diffusion,
// grounded on error_diffusion.cpp's ErrorDiffusionC::dither. It is
// stateful: a two-row error accumulator lives in the per-frame context
// and requires rows to be processed in monotone order.
type errorDiffusionFilter struct {
	width, height   int
	in, out         ztype.PixelFormat
	inType, outType filter.PixelType
	scale, offset   float64
}

func newErrorDiffusion(width, height int, inType filter.PixelType, in ztype.PixelFormat, outType filter.PixelType, out ztype.PixelFormat) (filter.Filter, error) {
	scale, offset := combinedScale(in, out)
	return &errorDiffusionFilter{
		width: width, height: height,
		in: in, out: out,
		inType: inType, outType: outType,
		scale: scale, offset: offset,
	}, nil
}

func (f *errorDiffusionFilter) Flags() filter.Flags {
	return filter.Flags{HasState: true, SameRow: true, EntireRow: true}
}

func (f *errorDiffusionFilter) ImageAttributes() filter.Attrs {
	return filter.Attrs{Width: f.width, Height: f.height, Type: f.outType}
}

func (f *errorDiffusionFilter) RequiredRowRange(i int) filter.Range { return filter.Range{First: i, Last: i + 1} }
func (f *errorDiffusionFilter) RequiredColRange(l, r int) filter.Range {
	return filter.Range{First: 0, Last: f.width}
}
func (f *errorDiffusionFilter) SimultaneousLines() int { return 1 }
func (f *errorDiffusionFilter) MaxBuffering() int      { return 1 }

// paddedWidth is the per-line accumulator length: one guard column on
// each side so j-1 and j+1 never need bounds checks, mirroring
// error_diffusion.cpp's tmp layout (prev_line = tmp+1).
func (f *errorDiffusionFilter) paddedWidth() int { return f.width + 2 }

func (f *errorDiffusionFilter) ContextSize() int {
	return 2 * f.paddedWidth() * 4
}

func (f *errorDiffusionFilter) TmpSize(left, right int) int { return 0 }

func (f *errorDiffusionFilter) InitContext(ctx []byte) {
	for i := range ctx {
		ctx[i] = 0
	}
}

func (f *errorDiffusionFilter) lines(ctx []byte) (line0, line1 []float32) {
	pw := f.paddedWidth()
	all := unsafe.Slice((*float32)(unsafe.Pointer(&ctx[0])), 2*pw)
	return all[:pw], all[pw:]
}

func (f *errorDiffusionFilter) Process(ctx []byte, src, dst filter.Buffer, tmp []byte, i, left, right int) {
	line0, line1 := f.lines(ctx)

	var prevLine, currLine []float32
	if i%2 == 0 {
		currLine, prevLine = line0, line1
	} else {
		currLine, prevLine = line1, line0
	}

	srcRow := src[0].Data[src[0].Row(i):]
	dstRow := dst[0].Data[dst[0].Row(i):]
	imax := f.out.IntegerMax()
	floatOut := isFloatType(f.outType)

	// currLine is being overwritten for this row; clear it so the
	// previous occupant (two rows back) doesn't leak in as noise.
	for k := range currLine {
		currLine[k] = 0
	}

	for j := 0; j < f.width; j++ {
		x := readSample(srcRow, f.inType, j)
		x = x*f.scale + f.offset

		// Padded index p = j+1; p-1 = j, p+1 = j+2.
		p := j + 1
		err := currLine[p-1]*(7.0/16) + prevLine[p+1]*(3.0/16) + prevLine[p]*(5.0/16) + prevLine[p-1]*(1.0/16)
		x += err

		var q float64
		if floatOut {
			q = x
		} else {
			q = float64(clampInt(int32(roundNearest(x)), 0, imax))
		}
		writeSample(dstRow, f.outType, j, q)

		currLine[p] = float32(x - q)
	}
}
