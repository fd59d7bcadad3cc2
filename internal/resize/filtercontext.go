package resize

import (
	"math"

	"github.com/pkg/errors"
)

// FilterContext is the evaluated, per-output-row sparse filter table,
// grounded on filter.h's EvaluatedFilter. Row i of Data holds Width
// coefficients to be applied starting at source index Left[i]. DataI16
// holds the same coefficients rounded to Q1.14 fixed point for the
// integer execution path.
type FilterContext struct {
	Width, Height int
	Stride        int
	StrideI16     int
	Data          []float32
	DataI16       []int16
	Left          []int
}

// Row returns the float32 coefficient row for output index i.
func (c *FilterContext) Row(i int) []float32 {
	return c.Data[i*c.Stride : i*c.Stride+c.Width]
}

// RowI16 returns the Q1.14 coefficient row for output index i.
func (c *FilterContext) RowI16(i int) []int16 {
	return c.DataI16[i*c.StrideI16 : i*c.StrideI16+c.Width]
}

// IsSorted reports whether Left is non-decreasing, grounded on
// resize_impl2.cpp's is_sorted check: a sorted filter can be executed
// with a sliding column window, giving tight required-range queries;
// an unsorted one (e.g. a flip or heavily shifted resize) must be
// treated as touching the entire axis.
func (c *FilterContext) IsSorted() bool {
	for i := 1; i < c.Height; i++ {
		if c.Left[i] < c.Left[i-1] {
			return false
		}
	}
	return true
}

const (
	q114Shift = 14
	q114One   = 1 << q114Shift
)

// computeFilterRow computes the un-normalized, un-trimmed tap values
// for a single output row at position pos in source coordinates, with
// the given support/filter_size/step, mirroring samples that fall
// outside [0.5, srcDim-0.5] as compute_filter does.
func computeFilterRow(f Kernel, pos float64, filterSize int, support, step, srcDim float64) (taps []float64, begin int) {
	beginPos := math.Floor(pos+support-float64(filterSize)+0.5) + 0.5

	minPos, maxPos := 0.5, srcDim-0.5

	taps = make([]float64, filterSize)
	total := 0.0
	for k := 0; k < filterSize; k++ {
		xpos := beginPos + float64(k)
		var realPos float64
		switch {
		case xpos < minPos:
			realPos = 2*minPos - xpos
		case xpos > maxPos:
			realPos = 2*maxPos - xpos
		default:
			realPos = xpos
		}
		w := f.Eval((realPos - pos) * step)
		taps[k] = w
		total += w
	}
	if total != 0 {
		for k := range taps {
			taps[k] /= total
		}
	}
	begin = int(math.Floor(beginPos))
	return taps, begin
}

// ComputeFilter builds the sparse per-output-row filter table mapping a
// sub-window of width source samples, starting at the fractional offset
// shift on an axis of length srcDim, onto dstDim output samples,
// grounded on filter.cpp's compute_filter.
func ComputeFilter(f Kernel, srcDim int, dstDim, shift, width float64) (*FilterContext, error) {
	if math.Abs(shift) >= float64(srcDim) {
		return nil, errors.Errorf("resize: shift %v out of bounds for source dimension %d", shift, srcDim)
	}
	if shift+width >= 2*float64(srcDim) {
		return nil, errors.Errorf("resize: shift+width %v exceeds source dimension %d", shift+width, srcDim)
	}

	scale := dstDim / width
	step := math.Min(scale, 1.0)
	support := float64(f.Support()) / step
	filterSize := int(math.Max(math.Ceil(support*2), 1))

	if float64(srcDim) <= support {
		return nil, errors.Errorf("resize: source dimension %d too small for filter support %v", srcDim, support)
	}
	outWidth := int(math.Ceil(dstDim))
	if width <= support {
		return nil, errors.Errorf("resize: sub-window width %v too small for filter support %v", width, support)
	}

	ctx := &FilterContext{
		Height: outWidth,
		Left:   make([]int, outWidth),
	}

	rows := make([][]float64, outWidth)
	maxLen := 0
	for i := 0; i < outWidth; i++ {
		pos := (float64(i)+0.5)/scale + shift
		taps, begin := computeFilterRow(f, pos, filterSize, support, step, float64(srcDim))
		rows[i] = taps
		ctx.Left[i] = begin
		if len(taps) > maxLen {
			maxLen = len(taps)
		}
	}

	compressed, newLeft, width2 := compressMatrix(rows, ctx.Left, srcDim)
	ctx.Left = newLeft
	ctx.Width = width2
	ctx.Stride = alignUp(width2, 8)
	ctx.StrideI16 = alignUp(width2, 16)
	ctx.Data = make([]float32, outWidth*ctx.Stride)
	ctx.DataI16 = make([]int16, outWidth*ctx.StrideI16)

	for i := 0; i < outWidth; i++ {
		row := ctx.Row(i)
		rowI16 := ctx.RowI16(i)
		for k, v := range compressed[i] {
			row[k] = float32(v)
			rowI16[k] = int16(math.Round(v * q114One))
		}
	}

	return ctx, nil
}

func alignUp(x, n int) int {
	return (x + n - 1) / n * n
}

// compressMatrix trims each row to the common leading/trailing
// nonzero span shared by every row, and advances left[] past any
// leading zero columns, grounded on filter.cpp's compress_matrix. A
// row's active window is [left[i], left[i]+len(row)); coefficients
// the kernel's support left as exactly zero at the head or tail of
// that window carry no information and are dropped, but only the
// amount every row agrees can be dropped, so all rows end up the same
// width.
func compressMatrix(rows [][]float64, left []int, srcDim int) ([][]float64, []int, int) {
	n := len(rows)
	if n == 0 {
		return rows, left, 0
	}

	colsLeft := math.MaxInt32
	colsRight := math.MaxInt32
	for _, row := range rows {
		l := leadingZeros(row)
		r := trailingZeros(row)
		if l < colsLeft {
			colsLeft = l
		}
		if r < colsRight {
			colsRight = r
		}
	}

	out := make([][]float64, n)
	newLeft := make([]int, n)
	width := 0
	for i, row := range rows {
		trimmed := row[colsLeft : len(row)-colsRight]
		out[i] = trimmed
		newLeft[i] = left[i] + colsLeft
		if len(trimmed) > width {
			width = len(trimmed)
		}
	}

	_ = srcDim
	return out, newLeft, width
}

func leadingZeros(row []float64) int {
	n := 0
	for n < len(row) && row[n] == 0 {
		n++
	}
	return n
}

func trailingZeros(row []float64) int {
	n := 0
	for n < len(row) && row[len(row)-1-n] == 0 {
		n++
	}
	return n
}
