package unresize

import "gonum.org/v1/gonum/mat"

// epsilon guards the LU divisions against an exactly-singular pivot,
// matching bilinear.cpp's use of std::numeric_limits<T>::epsilon().
const epsilon = 2.220446049250313e-16

// tridiagonalLU holds the Crout LU decomposition of a tridiagonal
// matrix, with the lower diagonal pre-inverted since it is only ever
// used as a division, grounded on bilinear.cpp's TridiagonalLU /
// tridiagonal_decompose.
type tridiagonalLU struct {
	l []float64 // pre-inverted: l[i] = 1 / L(i,i)
	u []float64 // u[i] = U(i, i+1)
	c []float64 // c[i] = L(i, i-1)
}

// tridiagonalDecompose decomposes the tridiagonal matrix m (only the
// main, sub- and super-diagonal entries are read) into L and U factors
// with L's diagonal stored inverted.
func tridiagonalDecompose(m *mat.Dense) tridiagonalLU {
	n, _ := m.Dims()
	lu := tridiagonalLU{l: make([]float64, n), u: make([]float64, n), c: make([]float64, n)}
	if n == 0 {
		return lu
	}

	diagL := make([]float64, n)

	lu.c[0] = 0
	diagL[0] = m.At(0, 0)
	if n > 1 {
		lu.u[0] = m.At(0, 1) / (diagL[0] + epsilon)
	}

	for i := 1; i < n-1; i++ {
		lu.c[i] = m.At(i, i-1)
		diagL[i] = m.At(i, i) - lu.c[i]*lu.u[i-1]
		lu.u[i] = m.At(i, i+1) / (diagL[i] + epsilon)
	}

	if n > 1 {
		lu.c[n-1] = m.At(n-1, n-2)
		diagL[n-1] = m.At(n-1, n-1) - lu.c[n-1]*lu.u[n-2]
		lu.u[n-1] = 0
	}

	for i := range diagL {
		lu.l[i] = 1.0 / (diagL[i] + epsilon)
	}

	return lu
}
