package colorspace

import (
	"unsafe"

	"github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

// Filter converts three co-sited f32 planes from one colorspace to
// another by running the operation path found by OperationPath in
// sequence, grounded on colorspace2.cpp's ColorspaceConversion2.
type Filter struct {
	width, height int
	ops           []Operation
}

// New builds a Filter converting in to out over a width x height
// image. An empty operation path (in == out) degenerates to a copy.
func New(width, height int, in, out ztype.Colorspace) (*Filter, error) {
	ops, err := OperationPath(in, out)
	if err != nil {
		return nil, err
	}
	return &Filter{width: width, height: height, ops: ops}, nil
}

func (f *Filter) Flags() filter.Flags {
	return filter.Flags{SameRow: true, InPlace: true, Color: true}
}

func (f *Filter) ImageAttributes() filter.Attrs {
	return filter.Attrs{Width: f.width, Height: f.height, Type: filter.Float}
}

func (f *Filter) RequiredRowRange(i int) filter.Range    { return filter.Range{First: i, Last: i + 1} }
func (f *Filter) RequiredColRange(l, r int) filter.Range { return filter.Range{First: l, Last: r} }
func (f *Filter) SimultaneousLines() int                 { return 1 }
func (f *Filter) MaxBuffering() int                      { return 1 }
func (f *Filter) ContextSize() int                        { return 0 }
func (f *Filter) TmpSize(left, right int) int             { return 0 }
func (f *Filter) InitContext(ctx []byte)                  {}

func planeFloats(p filter.Plane, row int) []float32 {
	off := p.Row(row)
	return unsafe.Slice((*float32)(unsafe.Pointer(&p.Data[off])), len(p.Data[off:])/4)
}

func (f *Filter) Process(ctx []byte, src, dst filter.Buffer, tmp []byte, i, left, right int) {
	var srcRow, dstRow [3][]float32
	for p := 0; p < 3; p++ {
		srcRow[p] = planeFloats(src[p], i)
		dstRow[p] = planeFloats(dst[p], i)
	}

	if len(f.ops) == 0 {
		for p := 0; p < 3; p++ {
			copy(dstRow[p][left:right], srcRow[p][left:right])
		}
		return
	}

	f.ops[0].Apply(srcRow, dstRow, left, right)
	for _, op := range f.ops[1:] {
		op.Apply(dstRow, dstRow, left, right)
	}
}
