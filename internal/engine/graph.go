package engine

import (
	"github.com/deepteams/zimg/internal/alloc"
	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

// Callback lets a caller stream samples into the graph's source planes
// and out of its destination planes a row-range at a time, mirroring
// FilterGraph::callback in Common/filtergraph.h. A non-nil error aborts
// the in-progress Process call with a UserCallbackFailed error.
type Callback func(i, left, right int) error

// FilterGraph is the constructed pipeline returned by New: up to two
// independent per-plane-group chains (luma, chroma) bracketing an
// optional joint colorspace-conversion stage that the chroma chain
// feeds into once it reaches 4:4:4.
//
// Common/filtergraph.h exposes attach_filter/attach_filter_uv as two
// separate builder surfaces and its impl (the actual scheduling logic)
// is not present anywhere in the retrieved sources, so the exact
// internal representation here - explicit pre/joint/post stages rather
// than a generic stage list - is this package's own design, built to
// satisfy the same external contract (TmpSize/InputBuffering/
// OutputBuffering queries, a single Process entry point with optional
// unpack/pack callbacks).
type FilterGraph struct {
	color bool

	lumaPre, chromaPre           zfilter.Filter
	lumaPreAttrs, chromaPreAttrs zfilter.Attrs

	joint      zfilter.Filter
	jointAttrs zfilter.Attrs

	lumaPost, chromaPost           zfilter.Filter
	lumaPostAttrs, chromaPostAttrs zfilter.Attrs

	srcFormat, dstFormat ztype.ImageFormat

	tmpSize         int
	inputBuffering  int
	outputBuffering int
}

func planeStride(a zfilter.Attrs) int {
	return alloc.Align(a.Width * a.Type.Size())
}

func planeBufferSize(a zfilter.Attrs) int {
	return planeStride(a) * a.Height
}

func filterTmpSize(f zfilter.Filter, width int) int {
	if f == nil {
		return 0
	}
	return f.TmpSize(0, width)
}

// sizeTmp precomputes GetTmpSize/GetInputBuffering/GetOutputBuffering,
// mirroring the exact allocation sequence Process carves from its tmp
// arena so the two never disagree.
func (g *FilterGraph) sizeTmp() {
	total := 0
	maxTmp := 0

	add := func(n int) { total += alloc.Align(n) }
	track := func(f zfilter.Filter, width int) {
		if f == nil {
			return
		}
		add(f.ContextSize())
		if t := filterTmpSize(f, width); t > maxTmp {
			maxTmp = t
		}
	}

	if g.joint != nil {
		track(g.lumaPre, g.lumaPreAttrs.Width)
		track(g.chromaPre, g.chromaPreAttrs.Width)
		track(g.chromaPre, g.chromaPreAttrs.Width)
		add(planeBufferSize(g.lumaPreAttrs))
		if g.color {
			add(planeBufferSize(g.chromaPreAttrs))
			add(planeBufferSize(g.chromaPreAttrs))
		}

		track(g.joint, g.jointAttrs.Width)
		add(planeBufferSize(g.jointAttrs))
		if g.color {
			add(planeBufferSize(g.jointAttrs))
			add(planeBufferSize(g.jointAttrs))
		}
	}

	track(g.lumaPost, g.lumaPostAttrs.Width)
	if g.color {
		track(g.chromaPost, g.chromaPostAttrs.Width)
		track(g.chromaPost, g.chromaPostAttrs.Width)
	}

	add(maxTmp)

	g.tmpSize = total
	g.inputBuffering = firstStageBuffering(g)
	g.outputBuffering = lastStageBuffering(g)
}

func firstStageBuffering(g *FilterGraph) int {
	if g.joint != nil {
		if g.lumaPre != nil {
			return g.lumaPre.MaxBuffering()
		}
		return 1
	}
	if g.lumaPost != nil {
		return g.lumaPost.MaxBuffering()
	}
	return 1
}

func lastStageBuffering(g *FilterGraph) int {
	if g.lumaPost != nil {
		return g.lumaPost.MaxBuffering()
	}
	return 1
}

// GetTmpSize returns the size in bytes the buffer passed to Process
// must provide.
func (g *FilterGraph) GetTmpSize() int { return g.tmpSize }

// GetInputBuffering returns the minimum number of source rows the
// caller must keep addressable at once when driving the graph through
// a circular input buffer.
func (g *FilterGraph) GetInputBuffering() int { return g.inputBuffering }

// GetOutputBuffering returns the minimum number of destination rows
// the caller must keep addressable at once when draining the graph
// through a circular output buffer.
func (g *FilterGraph) GetOutputBuffering() int { return g.outputBuffering }

// runMono drives a single mono (non-color) filter over its entire
// output range in SimultaneousLines()-sized row groups, invoking
// unpack before each group is consumed and pack after it is produced.
// Both src and dst are assumed fully materialized, bypassing circular
// tail buffering entirely.
func runMono(ctx []byte, f zfilter.Filter, src, dst zfilter.Buffer, tmp []byte, height, width int, unpack, pack Callback) error {
	f.InitContext(ctx)
	step := f.SimultaneousLines()
	if step <= 0 {
		step = 1
	}
	for i := 0; i < height; i += step {
		if unpack != nil {
			if err := unpack(i, 0, width); err != nil {
				return newError(UserCallbackFailed, "unpack callback failed at row %d: %v", i, err)
			}
		}
		f.Process(ctx, src, dst, tmp, i, 0, width)
		if pack != nil {
			if err := pack(i, 0, width); err != nil {
				return newError(UserCallbackFailed, "pack callback failed at row %d: %v", i, err)
			}
		}
	}
	return nil
}

func singlePlane(p zfilter.Plane) zfilter.Buffer {
	var b zfilter.Buffer
	b[0] = p
	return b
}

func makePlane(a zfilter.Attrs, arena *alloc.Arena) zfilter.Plane {
	stride := planeStride(a)
	return zfilter.Plane{Data: arena.Alloc(stride * a.Height), Stride: stride, Mask: zfilter.NoFold}
}

// Process drives src through the constructed graph into dst. tmp must
// be at least GetTmpSize() bytes. unpack/pack, if non-nil, are invoked
// once per row group consumed from src / produced into dst, always in
// plane order: luma, then chroma U, then chroma V. When the graph has a
// joint colorspace stage, a plane group with no pre-stage is copied
// from src whole by copyPlane, without unpack calls.
func (g *FilterGraph) Process(src, dst zfilter.Buffer, tmp []byte, unpack, pack Callback) error {
	arena := alloc.New(tmp)

	lumaSrc, lumaDst := src, dst
	chromaUSrc, chromaUDst := singlePlane(src[1]), singlePlane(dst[1])
	chromaVSrc, chromaVDst := singlePlane(src[2]), singlePlane(dst[2])

	if g.joint != nil {
		midLuma := makePlane(g.lumaPreAttrs, arena)
		var midU, midV zfilter.Plane
		if g.color {
			midU = makePlane(g.chromaPreAttrs, arena)
			midV = makePlane(g.chromaPreAttrs, arena)
		}

		if g.lumaPre != nil {
			if err := runMono(arena.Alloc(g.lumaPre.ContextSize()), g.lumaPre, lumaSrc, singlePlane(midLuma), tmp, g.lumaPreAttrs.Height, g.lumaPreAttrs.Width, unpack, nil); err != nil {
				return err
			}
		} else {
			copyPlane(midLuma, src[0])
		}
		if g.color {
			if g.chromaPre != nil {
				if err := runMono(arena.Alloc(g.chromaPre.ContextSize()), g.chromaPre, chromaUSrc, singlePlane(midU), tmp, g.chromaPreAttrs.Height, g.chromaPreAttrs.Width, unpack, nil); err != nil {
					return err
				}
				if err := runMono(arena.Alloc(g.chromaPre.ContextSize()), g.chromaPre, chromaVSrc, singlePlane(midV), tmp, g.chromaPreAttrs.Height, g.chromaPreAttrs.Width, unpack, nil); err != nil {
					return err
				}
			} else {
				copyPlane(midU, src[1])
				copyPlane(midV, src[2])
			}
		}

		var mid, mid2 zfilter.Buffer
		mid[0], mid[1], mid[2] = midLuma, midU, midV

		mid2[0] = makePlane(g.jointAttrs, arena)
		if g.color {
			mid2[1] = makePlane(g.jointAttrs, arena)
			mid2[2] = makePlane(g.jointAttrs, arena)
		}

		jointCtx := arena.Alloc(g.joint.ContextSize())
		g.joint.InitContext(jointCtx)
		step := g.joint.SimultaneousLines()
		if step <= 0 {
			step = 1
		}
		for i := 0; i < g.jointAttrs.Height; i += step {
			g.joint.Process(jointCtx, mid, mid2, tmp, i, 0, g.jointAttrs.Width)
		}

		lumaSrc, lumaDst = singlePlane(mid2[0]), dst
		if g.color {
			chromaUSrc, chromaVSrc = singlePlane(mid2[1]), singlePlane(mid2[2])
		}
	}

	postUnpack := boolUnpack(g.joint == nil, unpack)
	if err := runMono(arena.Alloc(g.lumaPost.ContextSize()), g.lumaPost, lumaSrc, lumaDst, tmp, g.lumaPostAttrs.Height, g.lumaPostAttrs.Width, postUnpack, pack); err != nil {
		return err
	}
	if g.color {
		if err := runMono(arena.Alloc(g.chromaPost.ContextSize()), g.chromaPost, chromaUSrc, chromaUDst, tmp, g.chromaPostAttrs.Height, g.chromaPostAttrs.Width, postUnpack, pack); err != nil {
			return err
		}
		if err := runMono(arena.Alloc(g.chromaPost.ContextSize()), g.chromaPost, chromaVSrc, chromaVDst, tmp, g.chromaPostAttrs.Height, g.chromaPostAttrs.Width, postUnpack, pack); err != nil {
			return err
		}
	}

	return nil
}

func boolUnpack(cond bool, cb Callback) Callback {
	if cond {
		return cb
	}
	return nil
}

func copyPlane(dst, src zfilter.Plane) {
	for i := 0; i < len(dst.Data) && i < len(src.Data); i += dst.Stride {
		end := i + dst.Stride
		if end > len(dst.Data) {
			end = len(dst.Data)
		}
		copy(dst.Data[i:end], src.Data[i:end])
	}
}
