package depth

import (
	"github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

// DitherType selects the per-pixel dither regime, grounded on depth2.h's
// DitherType enum.
type DitherType int

const (
	DitherNone DitherType = iota
	DitherOrdered
	DitherRandom
	DitherErrorDiffusion
)

// Filter converts a plane of PixelFormat In/InType to PixelFormat
// Out/OutType, applying the dither regime selected by Dither when
// narrowing to a lower-precision integer format. This covers the
// non-stateful regimes (to-float, round-to-nearest, ordered/random
// dither); DitherErrorDiffusion is served by errorDiffusionFilter
// instead since it requires a row accumulator.
type Filter struct {
	width, height    int
	in, out          ztype.PixelFormat
	inType, outType  filter.PixelType
	dither           DitherType
	chromaLocPhase   int
	scale, offset    float64
}

// New builds the depth filter converting width x height planes from
// (inType, in) to (outType, out) using the requested dither regime.
// phase selects the Bayer table's horizontal siting offset, derived by
// the graph builder from the plane's chroma location; the random table
// lookup does not use it.
func New(width, height int, inType filter.PixelType, in ztype.PixelFormat, outType filter.PixelType, out ztype.PixelFormat, dither DitherType, phase int) (filter.Filter, error) {
	if dither == DitherErrorDiffusion {
		return newErrorDiffusion(width, height, inType, in, outType, out)
	}
	scale, offset := combinedScale(in, out)
	return &Filter{
		width: width, height: height,
		in: in, out: out,
		inType: inType, outType: outType,
		dither: dither, chromaLocPhase: phase,
		scale: scale, offset: offset,
	}, nil
}

func (f *Filter) Flags() filter.Flags {
	return filter.Flags{
		SameRow: true,
		InPlace: f.outType.Size() <= f.inType.Size(),
	}
}

func (f *Filter) ImageAttributes() filter.Attrs {
	return filter.Attrs{Width: f.width, Height: f.height, Type: f.outType}
}

func (f *Filter) RequiredRowRange(i int) filter.Range    { return filter.Range{First: i, Last: i + 1} }
func (f *Filter) RequiredColRange(l, r int) filter.Range { return filter.Range{First: l, Last: r} }
func (f *Filter) SimultaneousLines() int                 { return 1 }
func (f *Filter) MaxBuffering() int                      { return 1 }
func (f *Filter) ContextSize() int                        { return 0 }
func (f *Filter) TmpSize(left, right int) int             { return 0 }
func (f *Filter) InitContext(ctx []byte)                  {}

// ditherAt returns the (-0.5, +0.5] offset for output pixel (row, col)
// under f's dither regime.
func (f *Filter) ditherAt(row, col int) float64 {
	switch f.dither {
	case DitherOrdered:
		return BayerAt(row, col, f.chromaLocPhase)
	case DitherRandom:
		return RandomAt(row, col)
	default:
		return 0
	}
}

func (f *Filter) Process(ctx []byte, src, dst filter.Buffer, tmp []byte, i, left, right int) {
	srcRow := src[0].Data[src[0].Row(i):]
	dstRow := dst[0].Data[dst[0].Row(i):]

	floatOut := isFloatType(f.outType)
	imax := f.out.IntegerMax()

	for j := left; j < right; j++ {
		x := readSample(srcRow, f.inType, j)
		y := x*f.scale + f.offset

		if floatOut {
			writeSample(dstRow, f.outType, j, y)
			continue
		}

		y += f.ditherAt(i, j)
		q := clampInt(int32(roundNearest(y)), 0, imax)
		writeSample(dstRow, f.outType, j, float64(q))
	}
}

// isFloatType reports whether a filter.PixelType is Half or Float.
func isFloatType(t filter.PixelType) bool {
	return t == filter.Half || t == filter.Float
}
