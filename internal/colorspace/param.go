package colorspace

import "github.com/deepteams/zimg/internal/ztype"

// Kr/Kb luma coefficients for each non-constant-luminance matrix,
// grounded on colorspace_param.h's REC_601_KR/KB, REC_709_KR/KB,
// REC_2020_KR/KB constants.
const (
	rec601Kr, rec601Kb = 0.299, 0.114
	rec709Kr, rec709Kb = 0.2126, 0.0722
	rec2020Kr, rec2020Kb = 0.2627, 0.0593
)

func kKrKb(m ztype.MatrixCoefficients) (kr, kb float64, ok bool) {
	switch m {
	case ztype.Matrix601:
		return rec601Kr, rec601Kb, true
	case ztype.Matrix709:
		return rec709Kr, rec709Kb, true
	case ztype.Matrix2020NCL:
		return rec2020Kr, rec2020Kb, true
	default:
		return 0, 0, false
	}
}

// NclRgbToYuvMatrix returns the 3x3 matrix converting gamma-domain RGB
// to YUV under a non-constant-luminance matrix, grounded on
// colorspace_param.h's ncl_rgb_to_yuv_matrix: Y = Kr*R + Kg*G + Kb*B,
// U = (B-Y) / (2*(1-Kb)), V = (R-Y) / (2*(1-Kr)).
func NclRgbToYuvMatrix(m ztype.MatrixCoefficients) (Matrix3x3, bool) {
	kr, kb, ok := kKrKb(m)
	if !ok {
		return Matrix3x3{}, false
	}
	kg := 1 - kr - kb

	uScale := 1 / (2 * (1 - kb))
	vScale := 1 / (2 * (1 - kr))

	return Matrix3x3{
		{kr, kg, kb},
		{-kr * uScale, -kg * uScale, (1 - kb) * uScale},
		{(1 - kr) * vScale, -kg * vScale, -kb * vScale},
	}, true
}

// NclYuvToRgbMatrix returns the inverse of NclRgbToYuvMatrix.
func NclYuvToRgbMatrix(m ztype.MatrixCoefficients) (Matrix3x3, bool) {
	fwd, ok := NclRgbToYuvMatrix(m)
	if !ok {
		return Matrix3x3{}, false
	}
	return fwd.Inverse(), true
}

// primaries in (x, y) chromaticity coordinates, grounded on
// colorspace_param.h's SMPTE_C_PRIMARIES / REC_709_PRIMARIES /
// REC_2020_PRIMARIES tables.
var primariesTable = map[ztype.ColorPrimaries][3][2]float64{
	ztype.PrimariesSMPTEC: {{0.630, 0.340}, {0.310, 0.595}, {0.155, 0.070}},
	ztype.Primaries709:    {{0.640, 0.330}, {0.300, 0.600}, {0.150, 0.060}},
	ztype.Primaries2020:   {{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}},
}

// D65 white point in xy, grounded on colorspace_param.h's
// ILLUMINANT_D65.
var whiteD65 = [2]float64{0.3127, 0.3290}

// GamutRgbToXyzMatrix derives the RGB->XYZ matrix for a set of
// primaries and the D65 white point using the standard chromaticity
// construction (solve each primary's XYZ column up to a per-column
// scale, then fix the scale so the primaries sum to the white point).
func GamutRgbToXyzMatrix(p ztype.ColorPrimaries) (Matrix3x3, bool) {
	xy, ok := primariesTable[p]
	if !ok {
		return Matrix3x3{}, false
	}

	var cols Matrix3x3 // columns are XYZ of each primary at Y=1
	for i, c := range xy {
		x, y := c[0], c[1]
		cols[0][i] = x / y
		cols[1][i] = 1
		cols[2][i] = (1 - x - y) / y
	}

	xw, yw := whiteD65[0], whiteD65[1]
	white := Vector3{xw / yw, 1, (1 - xw - yw) / yw}

	s := cols.Inverse().MulVector(white)

	var m Matrix3x3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] = cols[row][col] * s[col]
		}
	}
	return m, true
}

// GamutXyzToRgbMatrix returns the inverse of GamutRgbToXyzMatrix.
func GamutXyzToRgbMatrix(p ztype.ColorPrimaries) (Matrix3x3, bool) {
	fwd, ok := GamutRgbToXyzMatrix(p)
	if !ok {
		return Matrix3x3{}, false
	}
	return fwd.Inverse(), true
}

// BT.2020 constant-luminance constants, grounded on operation_impl.cpp's
// constant-luminance matrix construction.
const (
	cl2020Pb, cl2020Nb = 0.7909854, -0.9701716
	cl2020Pr, cl2020Nr = 0.4969147, -0.8591209
	cl2020Kr, cl2020Kb = 0.2627, 0.0593
)
