// Package colorspace implements the colorspace conversion kernel: 3x3
// matrix algebra, the BT.709 transfer function, BT.2020 constant
// luminance encode/decode, a shortest-path planner over the colorspace
// graph, and the resulting ColorspaceFilter.
package colorspace

// Vector3 is a fixed 3-component vector, grounded on matrix3.h's Vector3.
type Vector3 [3]float64

// Matrix3x3 is a fixed 3x3 matrix, grounded on matrix3.h's Matrix3x3.
type Matrix3x3 [3]Vector3

// Identity returns the 3x3 identity matrix.
func Identity() Matrix3x3 {
	return Matrix3x3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MulVector multiplies m by v.
func (m Matrix3x3) MulVector(v Vector3) Vector3 {
	var ret Vector3
	for i := 0; i < 3; i++ {
		var accum float64
		for k := 0; k < 3; k++ {
			accum += m[i][k] * v[k]
		}
		ret[i] = accum
	}
	return ret
}

// Mul multiplies m by n (m*n).
func (m Matrix3x3) Mul(n Matrix3x3) Matrix3x3 {
	var ret Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var accum float64
			for k := 0; k < 3; k++ {
				accum += m[i][k] * n[k][j]
			}
			ret[i][j] = accum
		}
	}
	return ret
}

func det2(a00, a01, a10, a11 float64) float64 {
	return a00*a11 - a01*a10
}

// Determinant returns the determinant of m.
func (m Matrix3x3) Determinant() float64 {
	det := m[0][0] * det2(m[1][1], m[1][2], m[2][1], m[2][2])
	det -= m[0][1] * det2(m[1][0], m[1][2], m[2][0], m[2][2])
	det += m[0][2] * det2(m[1][0], m[1][1], m[2][0], m[2][1])
	return det
}

// Inverse returns the inverse of m.
func (m Matrix3x3) Inverse() Matrix3x3 {
	var ret Matrix3x3
	det := m.Determinant()

	ret[0][0] = det2(m[1][1], m[1][2], m[2][1], m[2][2]) / det
	ret[0][1] = det2(m[0][2], m[0][1], m[2][2], m[2][1]) / det
	ret[0][2] = det2(m[0][1], m[0][2], m[1][1], m[1][2]) / det
	ret[1][0] = det2(m[1][2], m[1][0], m[2][2], m[2][0]) / det
	ret[1][1] = det2(m[0][0], m[0][2], m[2][0], m[2][2]) / det
	ret[1][2] = det2(m[0][2], m[0][0], m[1][2], m[1][0]) / det
	ret[2][0] = det2(m[1][0], m[1][1], m[2][0], m[2][1]) / det
	ret[2][1] = det2(m[0][1], m[0][0], m[2][1], m[2][0]) / det
	ret[2][2] = det2(m[0][0], m[0][1], m[1][0], m[1][1]) / det

	return ret
}

// Transpose returns the transpose of m.
func (m Matrix3x3) Transpose() Matrix3x3 {
	var ret Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret[i][j] = m[j][i]
		}
	}
	return ret
}
