// Package unresize implements the inverse-bilinear unresize kernel:
// given an image already upsampled with a bilinear filter, recover an
// approximation of the pre-upsample source by least-squares inversion
// of the bilinear weight matrix.
package unresize

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// bilinearWeights builds the dense out-by-in bilinear resampling
// matrix A used to upsample an `in`-sample axis to `out` samples at
// the given center shift, grounded on bilinear.cpp's bilinear_weights.
// Samples that land outside the input range mirror to the nearest
// edge sample rather than extrapolating.
func bilinearWeights(in, out int, shift float64) *mat.Dense {
	m := mat.NewDense(out, in, nil)

	leftmost := 0.5 + shift
	rightmost := float64(in) - 0.5 + shift

	clampIdx := func(f float64) int {
		if f < 0 {
			f = 0
		}
		if f > float64(in)-1 {
			f = float64(in) - 1
		}
		return int(f)
	}
	leftmostIdx := clampIdx(math.Floor(leftmost))
	rightmostIdx := clampIdx(math.Floor(rightmost))

	for i := 0; i < out; i++ {
		position := (float64(i) + 0.5) * float64(in) / float64(out)

		switch {
		case position <= leftmost:
			m.Set(i, leftmostIdx, 1.0)
		case position >= rightmost:
			m.Set(i, rightmostIdx, 1.0)
		default:
			leftIdx := int(math.Floor(position - leftmost))
			rightIdx := leftIdx + 1

			distance := position - float64(leftIdx) - leftmost
			m.Set(i, leftIdx, 1.0-distance)
			m.Set(i, rightIdx, distance)
		}
	}

	return m
}

// rowBand is the packed [offset, coefficients) representation of one
// row of a banded matrix, grounded on bilinear.cpp's row-packing of
// the transposed weight matrix into matrix_coefficients/
// matrix_row_offsets.
type rowBand struct {
	offset int
	coeffs []float64
}

// rowNonzeroSpan returns the [left, right) column span containing row's
// nonzero entries. An all-zero row reports an empty span at column 0.
func rowNonzeroSpan(row []float64) (left, right int) {
	left, right = -1, -1
	for j, v := range row {
		if v != 0 {
			if left == -1 {
				left = j
			}
			right = j + 1
		}
	}
	if left == -1 {
		return 0, 0
	}
	return left, right
}

// packRowBands packs m's rows into common-width row bands: every row
// shares the same band width (the widest row's nonzero span), with
// narrower rows' bands shifted left as needed to stay inside
// [0, cols), mirroring bilinear.cpp's `left = min(row_left, cols -
// rowsize)` clamp.
func packRowBands(m *mat.Dense) []rowBand {
	rows, cols := m.Dims()

	rowSize := 0
	for i := 0; i < rows; i++ {
		l, r := rowNonzeroSpan(mat.Row(nil, i, m))
		if r-l > rowSize {
			rowSize = r - l
		}
	}
	if rowSize == 0 {
		rowSize = 1
	}

	bands := make([]rowBand, rows)
	for i := 0; i < rows; i++ {
		full := mat.Row(nil, i, m)
		l, _ := rowNonzeroSpan(full)

		left := l
		if left > cols-rowSize {
			left = cols - rowSize
		}
		if left < 0 {
			left = 0
		}

		coeffs := make([]float64, rowSize)
		for j := 0; j < rowSize && left+j < cols; j++ {
			coeffs[j] = full[left+j]
		}
		bands[i] = rowBand{offset: left, coeffs: coeffs}
	}
	return bands
}
