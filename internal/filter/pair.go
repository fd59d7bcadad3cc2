package filter

import "github.com/deepteams/zimg/internal/alloc"

// PairFilter chains first, then second, through an internal cache that
// stages first's output for second's consumption. There is no single
// upstream source file this is ported from (the original composes
// these stages inline in the graph builder), so the cache-sizing
// arithmetic below is derived directly against the Filter contract's
// buffering and row-range guarantees.
type PairFilter struct {
	first, second Filter
	flags         Flags
	numPlanes     int
	cacheRows     int
	cacheStride   int
	cacheMask     uint32
}

// NewPair derives the combined flags and cache geometry for chaining
// first into second. second.Flags().InPlace only promises that second
// can consume and overwrite the same memory it was handed; it says
// nothing about that memory being large enough to hold first's output
// (the common narrowing case - e.g. a resize's float row feeding a
// depth filter down to bytes - needs more bytes per sample to produce
// first's row than the final destination has room for per sample), so
// it does not by itself let the cache be skipped. Instead it folds into
// the ordinary SameRow case below, which already sizes the cache down
// to second.MaxBuffering() rows - one row for the typical same-row,
// in-place stage.
func NewPair(first, second Filter) *PairFilter {
	ff, fs := first.Flags(), second.Flags()
	stepFirst, stepSecond := first.SimultaneousLines(), second.SimultaneousLines()

	flags := Flags{
		HasState:    ff.HasState || fs.HasState || !ff.SameRow || !fs.SameRow || stepFirst != stepSecond,
		SameRow:     ff.SameRow && fs.SameRow,
		InPlace:     ff.InPlace && fs.InPlace && first.ImageAttributes().Type == second.ImageAttributes().Type,
		EntireRow:   ff.EntireRow || fs.EntireRow,
		EntirePlane: fs.EntirePlane,
		Color:       ff.Color,
	}

	attr := first.ImageAttributes()
	stride := alloc.Align(attr.Width * attr.Type.Size())

	var cacheRows int
	switch {
	case ff.EntirePlane || fs.EntirePlane:
		cacheRows = attr.Height
	case stepFirst == stepSecond && fs.SameRow:
		cacheRows = second.MaxBuffering()
	default:
		cacheRows = stepFirst + second.MaxBuffering() - 1
	}
	if cacheRows <= 0 {
		cacheRows = 1
	}

	numPlanes := 1
	if flags.Color {
		numPlanes = 3
	}

	return &PairFilter{
		first:       first,
		second:      second,
		flags:       flags,
		numPlanes:   numPlanes,
		cacheRows:   cacheRows,
		cacheStride: stride,
		cacheMask:   SelectMask(cacheRows),
	}
}

func (p *PairFilter) Flags() Flags           { return p.flags }
func (p *PairFilter) ImageAttributes() Attrs { return p.second.ImageAttributes() }
func (p *PairFilter) SimultaneousLines() int { return p.second.SimultaneousLines() }

// MaxBuffering is the span of first-stage rows the cache must hold
// across all calls, which is exactly the cache's row count.
func (p *PairFilter) MaxBuffering() int { return p.cacheRows }

// RequiredRowRange composes by mapping the second stage's required rows
// through the first stage's RequiredRowRange at each of those rows.
func (p *PairFilter) RequiredRowRange(i int) Range {
	inner := p.second.RequiredRowRange(i)
	return unionRows(p.first, inner)
}

func (p *PairFilter) RequiredColRange(left, right int) Range {
	inner := p.second.RequiredColRange(left, right)
	return unionCols(p.first, inner)
}

func unionRows(f Filter, inner Range) Range {
	if inner.Last <= inner.First {
		return Range{}
	}
	out := f.RequiredRowRange(inner.First)
	for r := inner.First + 1; r < inner.Last; r++ {
		rr := f.RequiredRowRange(r)
		if rr.First < out.First {
			out.First = rr.First
		}
		if rr.Last > out.Last {
			out.Last = rr.Last
		}
	}
	return out
}

func unionCols(f Filter, inner Range) Range {
	if inner.Last <= inner.First {
		return Range{}
	}
	out := f.RequiredColRange(inner.First, inner.First+1)
	for c := inner.First + 1; c < inner.Last; c++ {
		rr := f.RequiredColRange(c, c+1)
		if rr.First < out.First {
			out.First = rr.First
		}
		if rr.Last > out.Last {
			out.Last = rr.Last
		}
	}
	return out
}

// cacheSize is the bytes the pair's context reserves for staging
// first's output ahead of second, across every cached plane.
func (p *PairFilter) cacheSize() int {
	return p.numPlanes * alloc.Align(p.cacheRows*p.cacheStride)
}

func (p *PairFilter) ContextSize() int {
	return alloc.Align(p.first.ContextSize()) + alloc.Align(p.second.ContextSize()) + p.cacheSize()
}

// TmpSize must accommodate both the first stage writing into the cache
// and the second stage reading from it; each stage's own scratch is
// independent so we take the larger - the cache itself is context, not
// tmp, and is sized by ContextSize instead.
func (p *PairFilter) TmpSize(left, right int) int {
	firstCols := p.first.RequiredColRange(left, right)
	t1 := p.first.TmpSize(firstCols.First, firstCols.Last)
	t2 := p.second.TmpSize(left, right)
	if t2 > t1 {
		return t2
	}
	return t1
}

// InitContext carves first's context, second's context, and the cache
// planes out of ctx, in that order. Process replays the identical
// allocation sequence against the same ctx slice to recover the same
// backing bytes, so the cache persists as genuine context state across
// calls rather than being reallocated per row group.
func (p *PairFilter) InitContext(ctx []byte) {
	a := alloc.New(ctx)
	p.first.InitContext(a.Alloc(p.first.ContextSize()))
	p.second.InitContext(a.Alloc(p.second.ContextSize()))
	for pl := 0; pl < p.numPlanes; pl++ {
		a.Alloc(p.cacheRows * p.cacheStride)
	}
}

// Process drives the first stage into the cache plane(s) (sized by
// cacheRows/cacheStride/cacheMask) for exactly the rows the second
// stage needs, then runs the second stage reading from that cache. A
// color filter pair caches all three planes; a mono pair caches plane 0
// only, leaving the rest of the Buffer unused.
func (p *PairFilter) Process(ctx []byte, src, dst Buffer, tmp []byte, i, left, right int) {
	a := alloc.New(ctx)
	ctx1 := a.Alloc(p.first.ContextSize())
	ctx2 := a.Alloc(p.second.ContextSize())

	var cachePlanes Buffer
	for pl := 0; pl < p.numPlanes; pl++ {
		cache := a.Alloc(p.cacheRows * p.cacheStride)
		cachePlanes[pl] = Plane{Data: cache, Stride: p.cacheStride, Mask: p.cacheMask}
	}

	rows := p.second.RequiredRowRange(i)
	cols := p.second.RequiredColRange(left, right)

	step1 := p.first.SimultaneousLines()
	firstCols := p.first.RequiredColRange(cols.First, cols.Last)
	for r := rows.First; r < rows.Last; r += step1 {
		p.first.Process(ctx1, src, cachePlanes, tmp, r, firstCols.First, firstCols.Last)
	}

	p.second.Process(ctx2, cachePlanes, dst, tmp, i, left, right)
}
