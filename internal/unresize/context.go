package unresize

import "gonum.org/v1/gonum/mat"

// BilinearContext is the execution context for the unresize algorithm:
// a packed band of the least-squares weight matrix plus a tridiagonal
// LU factor, grounded on bilinear.h's BilinearContext.
type BilinearContext struct {
	// InputWidth is the dimension of the upsampled image (M).
	InputWidth int
	// OutputWidth is the dimension of the unresized image (N).
	OutputWidth int

	rowCoeffs []float64 // packed [OutputWidth][rowSize]
	rowOffset []int
	rowSize   int

	lu tridiagonalLU
}

// NewBilinearContext builds the unresize context recovering an
// `in`-sample source axis from an `out`-sample upsampled axis, at the
// given center shift, grounded on bilinear.cpp's create_bilinear_context.
func NewBilinearContext(in, out int, shift float64) *BilinearContext {
	m := bilinearWeights(in, out, -shift*float64(in)/float64(out))
	mt := new(mat.Dense)
	mt.CloneFrom(m.T())

	pinv := new(mat.Dense)
	pinv.Mul(mt, m)

	lu := tridiagonalDecompose(pinv)

	bands := packRowBands(mt)
	rowSize := 0
	if len(bands) > 0 {
		rowSize = len(bands[0].coeffs)
	}

	ctx := &BilinearContext{
		InputWidth:  out,
		OutputWidth: in,
		rowSize:     rowSize,
		rowCoeffs:   make([]float64, len(bands)*rowSize),
		rowOffset:   make([]int, len(bands)),
		lu:          lu,
	}
	for i, b := range bands {
		copy(ctx.rowCoeffs[i*rowSize:(i+1)*rowSize], b.coeffs)
		ctx.rowOffset[i] = b.offset
	}
	return ctx
}

// row returns the packed coefficient band and its starting column
// offset for unresize output row i.
func (c *BilinearContext) row(i int) (coeffs []float64, offset int) {
	return c.rowCoeffs[i*c.rowSize : (i+1)*c.rowSize], c.rowOffset[i]
}
