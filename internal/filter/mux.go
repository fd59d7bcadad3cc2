package filter

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/deepteams/zimg/internal/alloc"
)

// MuxFilter wraps a single-plane filter (or a luma/chroma pair that
// differ only in chroma handling) and runs it independently over three
// planes, presenting a color=true filter to the graph. Grounded on
// mux_filter.cpp's MuxFilter.
type MuxFilter struct {
	filter   Filter
	filterUV Filter // nil when luma and chroma share one filter
	flags    Flags
}

// NewMux validates that filter and filterUV (if non-nil) agree on
// output attributes, step, and per-row/per-column input ranges, then
// derives the combined flags.
func NewMux(f, fUV Filter) (*MuxFilter, error) {
	ff := f.Flags()
	ffUV := ff
	if fUV != nil {
		ffUV = fUV.Flags()
	}
	if ff.Color || ffUV.Color {
		return nil, errors.New("filter: cannot mux color filters")
	}

	if fUV != nil {
		step := f.SimultaneousLines()
		attr := f.ImageAttributes()

		if fUV.ImageAttributes() != attr {
			return nil, errors.New("filter: mux filters must share output attributes")
		}
		if fUV.SimultaneousLines() != step {
			return nil, errors.New("filter: UV filter must produce the same number of lines")
		}
		for i := 0; i < attr.Height; i += step {
			r, rUV := f.RequiredRowRange(i), fUV.RequiredRowRange(i)
			if r != rUV {
				return nil, fmt.Errorf("filter: UV filter must operate on the same row range at i=%d", i)
			}
		}
		for j := 0; j < attr.Width; j++ {
			r, rUV := f.RequiredColRange(j, j+1), fUV.RequiredColRange(j, j+1)
			if r != rUV {
				return nil, fmt.Errorf("filter: UV filter must operate on the same column range at j=%d", j)
			}
		}
	}

	return &MuxFilter{
		filter:   f,
		filterUV: fUV,
		flags: Flags{
			HasState:    ff.HasState || ffUV.HasState,
			SameRow:     ff.SameRow && ffUV.SameRow,
			InPlace:     ff.InPlace && ffUV.InPlace,
			EntireRow:   ff.EntireRow || ffUV.EntireRow,
			EntirePlane: ff.EntirePlane || ffUV.EntirePlane,
			Color:       true,
		},
	}, nil
}

func (m *MuxFilter) uv() Filter {
	if m.filterUV != nil {
		return m.filterUV
	}
	return m.filter
}

func (m *MuxFilter) Flags() Flags            { return m.flags }
func (m *MuxFilter) ImageAttributes() Attrs  { return m.filter.ImageAttributes() }
func (m *MuxFilter) SimultaneousLines() int  { return m.filter.SimultaneousLines() }
func (m *MuxFilter) MaxBuffering() int       { return m.filter.MaxBuffering() }

func (m *MuxFilter) RequiredRowRange(i int) Range         { return m.filter.RequiredRowRange(i) }
func (m *MuxFilter) RequiredColRange(l, r int) Range      { return m.filter.RequiredColRange(l, r) }

// ContextSize reserves one context slot for luma and two for chroma
// (U and V use independently-initialized copies of the same filter
// state), each aligned, mirroring MuxFilter::get_context_size.
func (m *MuxFilter) ContextSize() int {
	return alloc.Align(m.filter.ContextSize()) + 2*alloc.Align(m.uv().ContextSize())
}

func (m *MuxFilter) TmpSize(left, right int) int {
	t := m.filter.TmpSize(left, right)
	tUV := m.uv().TmpSize(left, right)
	if tUV > t {
		return tUV
	}
	return t
}

func (m *MuxFilter) InitContext(ctx []byte) {
	a := alloc.New(ctx)
	m.filter.InitContext(a.Alloc(m.filter.ContextSize()))
	m.uv().InitContext(a.Alloc(m.uv().ContextSize()))
	m.uv().InitContext(a.Alloc(m.uv().ContextSize()))
}

// Process dispatches three single-plane calls: src/dst must each carry
// luma at plane 0, chroma at planes 1 and 2.
func (m *MuxFilter) Process(ctx []byte, src, dst Buffer, tmp []byte, i, left, right int) {
	a := alloc.New(ctx)
	contexts := [3][]byte{
		a.Alloc(m.filter.ContextSize()),
		a.Alloc(m.uv().ContextSize()),
		a.Alloc(m.uv().ContextSize()),
	}

	for p := 0; p < 3; p++ {
		f := m.filter
		if p != 0 {
			f = m.uv()
		}
		var s, d Buffer
		s[0], d[0] = src[p], dst[p]
		f.Process(contexts[p], s, d, tmp, i, left, right)
	}
}
