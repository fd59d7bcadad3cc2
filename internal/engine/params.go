package engine

import (
	"github.com/deepteams/zimg/internal/depth"
	"github.com/deepteams/zimg/internal/resize"
)

// CPUClass names a CPU dispatch family. New stores it in Params but
// passes it to no kernel constructor: every kernel it builds runs the
// same scalar code whichever class is selected.
type CPUClass int

const (
	CPUNone CPUClass = iota
	CPUAuto
)

// Params selects the resampling filters, dither mode, and CPU dispatch
// family a FilterGraph is built with.
type Params struct {
	ResizeFilterLuma   resize.Kernel
	ResizeFilterChroma resize.Kernel

	Dither depth.DitherType

	CPU CPUClass
}

// DefaultParams returns Mitchell-Netravali bicubic resampling for both
// luma and chroma with no dither, a conservative default suitable when
// the caller has no stronger preference.
func DefaultParams() Params {
	return Params{
		ResizeFilterLuma:   resize.NewBicubic(1.0/3, 1.0/3),
		ResizeFilterChroma: resize.NewBicubic(1.0/3, 1.0/3),
		Dither:             depth.DitherNone,
		CPU:                CPUAuto,
	}
}
