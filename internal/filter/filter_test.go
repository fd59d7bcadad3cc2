package filter

import "testing"

// identityFilter is a minimal same_row, in_place, stateless filter used
// to exercise Mux/Pair composition without pulling in a real kernel.
type identityFilter struct {
	w, h int
	typ  PixelType
}

func (f identityFilter) Flags() Flags {
	return Flags{SameRow: true, InPlace: true}
}
func (f identityFilter) ImageAttributes() Attrs { return Attrs{f.w, f.h, f.typ} }
func (f identityFilter) RequiredRowRange(i int) Range    { return Range{i, i + 1} }
func (f identityFilter) RequiredColRange(l, r int) Range { return Range{l, r} }
func (f identityFilter) SimultaneousLines() int          { return 1 }
func (f identityFilter) MaxBuffering() int               { return 1 }
func (f identityFilter) ContextSize() int                { return 0 }
func (f identityFilter) TmpSize(l, r int) int            { return 0 }
func (f identityFilter) InitContext(ctx []byte)          {}
func (f identityFilter) Process(ctx []byte, src, dst Buffer, tmp []byte, i, left, right int) {
	copy(dst[0].Data[dst[0].Row(i):], src[0].Data[src[0].Row(i):])
}

func TestSelectMask(t *testing.T) {
	cases := []struct {
		count int
		want  uint32
	}{
		{1, 0},
		{2, 1},
		{3, 3},
		{4, 3},
		{5, 7},
		{64, 63},
		{65, 127},
	}
	for _, c := range cases {
		if got := SelectMask(c.count); got != c.want {
			t.Errorf("SelectMask(%d) = %d, want %d", c.count, got, c.want)
		}
	}
}

func TestMuxRejectsColorFilters(t *testing.T) {
	f := identityFilter{w: 4, h: 4, typ: Byte}
	colorF := muxTestColorWrap{f}
	if _, err := NewMux(colorF, nil); err == nil {
		t.Fatal("expected error muxing a color filter")
	}
}

type muxTestColorWrap struct{ identityFilter }

func (m muxTestColorWrap) Flags() Flags {
	fl := m.identityFilter.Flags()
	fl.Color = true
	return fl
}

func TestMuxDerivesColorFlag(t *testing.T) {
	f := identityFilter{w: 4, h: 4, typ: Byte}
	m, err := NewMux(f, nil)
	if err != nil {
		t.Fatalf("NewMux: %v", err)
	}
	if !m.Flags().Color {
		t.Error("mux filter must declare Color=true")
	}
	if m.ContextSize() != 0 {
		t.Errorf("ContextSize() = %d, want 0: the three context slots of a stateless filter are empty", m.ContextSize())
	}
}

// An in-place second stage still needs a cache: InPlace only promises
// second can overwrite the memory it reads, not that the caller's dst
// buffer has room for first's (possibly wider) sample type. The pair
// falls back to the ordinary same-row sizing, landing on a one-row
// cache for two SimultaneousLines()==1 stages.
func TestPairCacheRowsInPlace(t *testing.T) {
	a := identityFilter{w: 4, h: 4, typ: Byte}
	b := identityFilter{w: 4, h: 4, typ: Byte}
	p := NewPair(a, b)
	if p.cacheRows != b.MaxBuffering() {
		t.Errorf("cacheRows = %d, want %d", p.cacheRows, b.MaxBuffering())
	}
}

// A narrowing in-place second stage (wider input samples than output)
// must never be told to write into a zero-length cache.
func TestPairCacheNonZeroForNarrowingInPlace(t *testing.T) {
	a := identityFilter{w: 4, h: 4, typ: Float}
	b := narrowingInPlaceFilter{identityFilter{w: 4, h: 4, typ: Byte}}
	p := NewPair(a, b)
	if p.cacheRows <= 0 {
		t.Fatalf("cacheRows = %d, want > 0", p.cacheRows)
	}
	if p.cacheStride < 4*4 {
		t.Errorf("cacheStride = %d, want enough room for first's float row", p.cacheStride)
	}

	ctx := make([]byte, p.ContextSize())
	p.InitContext(ctx)

	var src, dst Buffer
	src[0] = Plane{Data: make([]byte, 4*4*4), Stride: 4 * 4, Mask: NoFold}
	dst[0] = Plane{Data: make([]byte, 4*4*1), Stride: 4 * 1, Mask: NoFold}

	for i := 0; i < 4; i++ {
		p.Process(ctx, src, dst, nil, i, 0, 4)
	}
}

// narrowingInPlaceFilter behaves like identityFilter but advertises a
// byte-sized output and an in-place flag, mimicking a depth filter
// narrowing a wider upstream sample type.
type narrowingInPlaceFilter struct{ identityFilter }

func (f narrowingInPlaceFilter) Flags() Flags {
	return Flags{SameRow: true, InPlace: true}
}

type statefulFilter struct{ identityFilter }

func (s statefulFilter) Flags() Flags {
	fl := s.identityFilter.Flags()
	fl.InPlace = false
	return fl
}
func (s statefulFilter) MaxBuffering() int { return 3 }

func TestPairCacheRowsNotInPlace(t *testing.T) {
	a := identityFilter{w: 4, h: 4, typ: Byte}
	b := statefulFilter{identityFilter{w: 4, h: 4, typ: Byte}}
	p := NewPair(a, b)
	if p.cacheRows != b.MaxBuffering() {
		t.Errorf("cacheRows = %d, want %d", p.cacheRows, b.MaxBuffering())
	}
}
