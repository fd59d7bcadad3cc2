package engine

import (
	"math"

	"github.com/deepteams/zimg/internal/depth"
	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/resize"
	"github.com/deepteams/zimg/internal/ztype"
)

// toFilterType converts a ztype.PixelType to its internal/filter
// mirror; both enumerate {Byte, Word, Half, Float} in the same order
// (internal/filter's copy exists only to avoid an import cycle back
// into ztype, per its own doc comment).
func toFilterType(t ztype.PixelType) zfilter.PixelType { return zfilter.PixelType(t) }

// planeState tracks one plane-group's current geometry and sample
// format as the builder threads it through successive stages.
type planeState struct {
	width, height int
	pixelType     ztype.PixelType
	format        ztype.PixelFormat
}

func (s planeState) attrs() zfilter.Attrs {
	return zfilter.Attrs{Width: s.width, Height: s.height, Type: toFilterType(s.pixelType)}
}

// chainDepth appends a depth/dither conversion to chain (nil means
// identity so far), returning the new chain and plane state. phase
// selects the ordered-dither table's horizontal siting offset.
func chainDepth(chain zfilter.Filter, s planeState, outType ztype.PixelType, out ztype.PixelFormat, dither depth.DitherType, phase int) (zfilter.Filter, planeState, error) {
	f, err := depth.New(s.width, s.height, toFilterType(s.pixelType), s.format, toFilterType(outType), out, dither, phase)
	if err != nil {
		return nil, s, err
	}
	next := planeState{width: s.width, height: s.height, pixelType: outType, format: out}
	return appendFilter(chain, f), next, nil
}

func appendFilter(chain zfilter.Filter, next zfilter.Filter) zfilter.Filter {
	if chain == nil {
		return next
	}
	return zfilter.NewPair(chain, next)
}

// finalizeChain substitutes a pass-through identityFilter for an empty
// chain, so every plane-group pipeline the builder produces is a real
// filter.Filter even when no stage was needed: identical source and
// destination formats yield a plain copy.
func finalizeChain(chain zfilter.Filter, s planeState) zfilter.Filter {
	if chain != nil {
		return chain
	}
	return identityFilter{width: s.width, height: s.height, pixelType: toFilterType(s.pixelType)}
}

// needsDepthChange reports whether s's sample format differs from the
// requested (outType, out) pairing in any way a depth filter would
// need to act on.
func needsDepthChange(s planeState, outType ztype.PixelType, out ztype.PixelFormat) bool {
	return s.pixelType != outType || s.format != out
}

// chainResize appends a separable resize of s to (dstWidth, dstHeight)
// at the given sub-pixel shifts, using kernel k, picking horizontal-
// first or vertical-first execution order by comparing the estimated
// per-pixel work of each ordering.
func chainResize(chain zfilter.Filter, s planeState, dstWidth, dstHeight int, shiftW, shiftH float64, k resize.Kernel) (zfilter.Filter, planeState, error) {
	if dstWidth == s.width && dstHeight == s.height && shiftW == 0 && shiftH == 0 {
		return chain, s, nil
	}
	if s.pixelType == ztype.Half {
		return nil, s, unsupported("resize: half-precision samples must be promoted to float before resizing")
	}

	pt := toFilterType(s.pixelType)
	pixelMax := int32(s.format.IntegerMax())

	buildH := func(srcWidth, srcHeight int) (*resize.ResizeH, error) {
		ctx, err := resize.ComputeFilter(k, srcWidth, float64(dstWidth), shiftW, float64(srcWidth))
		if err != nil {
			return nil, err
		}
		return resize.NewResizeH(ctx, srcWidth, srcHeight, pt, pixelMax), nil
	}
	buildV := func(srcWidth, srcHeight int) (*resize.ResizeV, error) {
		ctx, err := resize.ComputeFilter(k, srcHeight, float64(dstHeight), shiftH, float64(srcHeight))
		if err != nil {
			return nil, err
		}
		return resize.NewResizeV(ctx, srcWidth, srcHeight, pt, pixelMax), nil
	}

	ratioH := float64(dstWidth) / float64(s.width)
	ratioV := float64(dstHeight) / float64(s.height)
	costHFirst := math.Max(ratioH, 1)*2 + ratioH*math.Max(ratioV, 1)
	costVFirst := math.Max(ratioV, 1) + ratioV*math.Max(ratioH, 1)*2

	var stage zfilter.Filter
	if costHFirst <= costVFirst {
		h, err := buildH(s.width, s.height)
		if err != nil {
			return nil, s, err
		}
		v, err := buildV(dstWidth, s.height)
		if err != nil {
			return nil, s, err
		}
		stage = zfilter.NewPair(h, v)
	} else {
		v, err := buildV(s.width, s.height)
		if err != nil {
			return nil, s, err
		}
		h, err := buildH(s.width, dstHeight)
		if err != nil {
			return nil, s, err
		}
		stage = zfilter.NewPair(v, h)
	}

	next := planeState{width: dstWidth, height: dstHeight, pixelType: s.pixelType, format: s.format}
	return appendFilter(chain, stage), next, nil
}
