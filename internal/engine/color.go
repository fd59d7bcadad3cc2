package engine

import (
	"github.com/deepteams/zimg/internal/colorspace"
	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

// colorState mirrors planeState but for the unified 3-plane pipeline
// that exists once luma and chroma have been merged at 4:4:4 to run a
// colorspace conversion.
type colorState struct {
	width, height int
	colorspace    ztype.Colorspace
}

func (s colorState) attrs() zfilter.Attrs {
	return zfilter.Attrs{Width: s.width, Height: s.height, Type: zfilter.Float}
}

// chainColorspace builds the colorspace conversion taking colorState s
// to out, grounded on colorspace2.cpp's ColorspaceConversion2. Unlike
// the per-plane kernels, colorspace.Filter is natively a 3-plane
// Color=true filter (it has to see all three channels to apply a
// matrix), so it is never wrapped through MuxFilter: the graph
// materializes luma and chroma into one 4:4:4 buffer first (since they
// can have arrived there through entirely different per-plane chains,
// e.g. an identity luma next to an upsampling chroma resize, which
// mux_filter.cpp's equal-required-row-range contract does not permit
// combining into one filter) and then runs this single filter over it
// directly.
func chainColorspace(chain zfilter.Filter, s colorState, out ztype.Colorspace) (zfilter.Filter, colorState, error) {
	f, err := colorspace.New(s.width, s.height, s.colorspace, out)
	if err != nil {
		return nil, s, illegalArgument("colorspace: %v", err)
	}
	next := colorState{width: s.width, height: s.height, colorspace: out}
	return appendFilter(chain, f), next, nil
}

// identityFilter passes a plane through unchanged; finalizeChain
// substitutes it whenever a plane group's chain has no stages at all,
// so a conversion between matching source and destination formats
// still produces a real Filter (a plain copy).
type identityFilter struct {
	width, height int
	pixelType     zfilter.PixelType
}

func (f identityFilter) Flags() zfilter.Flags {
	return zfilter.Flags{SameRow: true, InPlace: true}
}
func (f identityFilter) ImageAttributes() zfilter.Attrs {
	return zfilter.Attrs{Width: f.width, Height: f.height, Type: f.pixelType}
}
func (f identityFilter) RequiredRowRange(i int) zfilter.Range { return zfilter.Range{First: i, Last: i + 1} }
func (f identityFilter) RequiredColRange(l, r int) zfilter.Range {
	return zfilter.Range{First: l, Last: r}
}
func (f identityFilter) SimultaneousLines() int      { return 1 }
func (f identityFilter) MaxBuffering() int           { return 1 }
func (f identityFilter) ContextSize() int            { return 0 }
func (f identityFilter) TmpSize(left, right int) int { return 0 }
func (f identityFilter) InitContext(ctx []byte)      {}
func (f identityFilter) Process(ctx []byte, src, dst zfilter.Buffer, tmp []byte, i, left, right int) {
	srcRow := src[0].Data[src[0].Row(i):]
	dstRow := dst[0].Data[dst[0].Row(i):]
	n := (right - left) * f.pixelType.Size()
	off := left * f.pixelType.Size()
	copy(dstRow[off:off+n], srcRow[off:off+n])
}
