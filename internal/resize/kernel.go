// Package resize implements the separable resize kernel: filter
// kernel functions, per-output-row sparse filter tables, and the
// horizontal/vertical resize filters.
package resize

import "math"

// Kernel is a 1-D resampling filter: a finite support and a continuous
// evaluation function, grounded on filter.h's Filter hierarchy.
type Kernel interface {
	Support() int
	Eval(x float64) float64
}

type pointKernel struct{}

func (pointKernel) Support() int          { return 0 }
func (pointKernel) Eval(x float64) float64 { return 1.0 }

// Point is the nearest-neighbor kernel.
var Point Kernel = pointKernel{}

type bilinearKernel struct{}

func (bilinearKernel) Support() int { return 1 }
func (bilinearKernel) Eval(x float64) float64 {
	return math.Max(1.0-math.Abs(x), 0.0)
}

// Bilinear is the triangle kernel.
var Bilinear Kernel = bilinearKernel{}

// Bicubic is the Mitchell-Netravali family, grounded on filter.cpp's
// BicubicFilter.
type Bicubic struct {
	p0, p2, p3 float64
	q0, q1, q2, q3 float64
}

// NewBicubic builds a Bicubic kernel for parameters b, c. The default
// b=c=1/3 is Mitchell-Netravali.
func NewBicubic(b, c float64) Bicubic {
	return Bicubic{
		p0: (6.0 - 2.0*b) / 6.0,
		p2: (-18.0 + 12.0*b + 6.0*c) / 6.0,
		p3: (12.0 - 9.0*b - 6.0*c) / 6.0,
		q0: (8.0*b + 24.0*c) / 6.0,
		q1: (-12.0*b - 48.0*c) / 6.0,
		q2: (6.0*b + 30.0*c) / 6.0,
		q3: (-b - 6.0*c) / 6.0,
	}
}

func (Bicubic) Support() int { return 2 }

func (k Bicubic) Eval(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1.0:
		return k.p0 + k.p2*x*x + k.p3*x*x*x
	case x < 2.0:
		return k.q0 + k.q1*x + k.q2*x*x + k.q3*x*x*x
	default:
		return 0
	}
}

type spline16Kernel struct{}

func (spline16Kernel) Support() int { return 2 }
func (spline16Kernel) Eval(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1.0:
		return 1.0 - (1.0/5.0*x) - (9.0/5.0*x*x) + x*x*x
	case x < 2.0:
		x -= 1.0
		return (-7.0/15.0*x) + (4.0/5.0*x*x) - (1.0/3.0*x*x*x)
	default:
		return 0
	}
}

// Spline16 is the Avisynth Spline16 kernel.
var Spline16 Kernel = spline16Kernel{}

type spline36Kernel struct{}

func (spline36Kernel) Support() int { return 3 }
func (spline36Kernel) Eval(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1.0:
		return 1.0 - (3.0/209.0*x) - (453.0/209.0*x*x) + (13.0/11.0*x*x*x)
	case x < 2.0:
		x -= 1.0
		return (-156.0/209.0*x) + (270.0/209.0*x*x) - (6.0/11.0*x*x*x)
	case x < 3.0:
		x -= 2.0
		return (26.0/209.0*x) - (45.0/209.0*x*x) + (1.0/11.0*x*x*x)
	default:
		return 0
	}
}

// Spline36 is the Avisynth Spline36 kernel.
var Spline36 Kernel = spline36Kernel{}

func sinc(x float64) float64 {
	if math.Abs(x) < 0.0001 {
		return 1.0
	}
	return math.Sin(x*math.Pi) / (x * math.Pi)
}

// Lanczos is the windowed-sinc kernel with a given number of taps.
type Lanczos struct {
	Taps int
}

func (k Lanczos) Support() int { return k.Taps }

func (k Lanczos) Eval(x float64) float64 {
	x = math.Abs(x)
	if x < float64(k.Taps) {
		return sinc(x) * sinc(x/float64(k.Taps))
	}
	return 0
}
