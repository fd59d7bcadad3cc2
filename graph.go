package zimg

import (
	"github.com/deepteams/zimg/internal/cpuinfo"
	"github.com/deepteams/zimg/internal/depth"
	"github.com/deepteams/zimg/internal/engine"
	"github.com/deepteams/zimg/internal/resize"
)

// Kernel is a one-dimensional resampling filter: a finite support and
// a continuous evaluation function, used for both the forward resize
// and (via [NewUnresizeGraph]) its inverse.
type Kernel = resize.Kernel

// Point, Bilinear, Spline16, and Spline36 are the fixed-shape resize
// kernels; Bicubic and Lanczos take parameters via [NewBicubic] and a
// Lanczos{Taps: n} literal.
var (
	Point    = resize.Point
	Bilinear = resize.Bilinear
	Spline16 = resize.Spline16
	Spline36 = resize.Spline36
)

// Bicubic is the Mitchell-Netravali family of resize kernels.
type Bicubic = resize.Bicubic

// NewBicubic builds a Bicubic kernel for parameters b, c. b=c=1/3 is
// Mitchell-Netravali, the conservative default [DefaultFilterGraphParams]
// selects.
func NewBicubic(b, c float64) Bicubic { return resize.NewBicubic(b, c) }

// Lanczos is the windowed-sinc resize kernel with a given number of
// taps.
type Lanczos = resize.Lanczos

// DitherType selects the per-pixel dither regime a depth conversion
// applies when narrowing to a lower-precision integer format.
type DitherType = depth.DitherType

const (
	DitherNone           = depth.DitherNone
	DitherOrdered        = depth.DitherOrdered
	DitherRandom         = depth.DitherRandom
	DitherErrorDiffusion = depth.DitherErrorDiffusion
)

// CPUClass names a CPU dispatch family (CPUNone or CPUAuto, the
// default). NewFilterGraph records it in the params but does not
// consult it: every kernel runs the same scalar code whichever class is
// selected. [DetectedSIMD] reports the host's feature level.
type CPUClass = engine.CPUClass

const (
	CPUNone = engine.CPUNone
	CPUAuto = engine.CPUAuto
)

// SIMDClass is the host CPU feature level the auto dispatch family
// resolves to.
type SIMDClass = cpuinfo.Class

// DetectedSIMD reports the SIMD feature level detected on the current
// host.
func DetectedSIMD() SIMDClass { return cpuinfo.Detected() }

// FilterGraphParams selects the resampling filters, dither mode, and
// CPU dispatch family a FilterGraph is built with.
type FilterGraphParams = engine.Params

// DefaultFilterGraphParams returns Mitchell-Netravali bicubic
// resampling for both luma and chroma with no dither and
// auto-detected CPU dispatch - a conservative default suitable when
// the caller has no stronger preference.
func DefaultFilterGraphParams() FilterGraphParams { return engine.DefaultParams() }

// FilterGraph is a constructed pipeline converting one ImageFormat to
// another: up to two independent per-plane-group chains (luma,
// chroma) bracketing an optional joint colorspace-conversion stage.
// Build one with [NewFilterGraph] and drive it with [FilterGraph.Process].
type FilterGraph struct {
	g *engine.FilterGraph
}

// NewFilterGraph validates src and dst and builds the FilterGraph
// converting between them, picking whichever of colorspace
// conversion, resize, and bit-depth/dither conversion the pair of
// formats requires. It returns an error (matching [Error] via
// errors.As) if either format is invalid or the conversion is
// unsupported - e.g. a field-parity change, or converting between a
// grey and a color image.
func NewFilterGraph(src, dst ImageFormat, params FilterGraphParams) (*FilterGraph, error) {
	g, err := engine.New(src, dst, params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &FilterGraph{g: g}, nil
}

// GetTmpSize returns the size in bytes the tmp buffer passed to
// Process must provide.
func (f *FilterGraph) GetTmpSize() int { return f.g.GetTmpSize() }

// GetInputBuffering returns the minimum number of source rows the
// caller must keep addressable at once when driving the graph through
// a circular input buffer.
func (f *FilterGraph) GetInputBuffering() int { return f.g.GetInputBuffering() }

// GetOutputBuffering returns the minimum number of destination rows
// the caller must keep addressable at once when draining the graph
// through a circular output buffer.
func (f *FilterGraph) GetOutputBuffering() int { return f.g.GetOutputBuffering() }

// Process drives src through the graph into dst. tmp must be at least
// GetTmpSize() bytes. unpack/pack, if non-nil, are invoked once per
// row group consumed from src / produced into dst, always in plane
// order: luma, then chroma U, then chroma V. When the graph has a
// colorspace stage, a plane group with no conversion ahead of that
// stage is copied from src whole, without unpack calls.
func (f *FilterGraph) Process(src, dst ImageBuffer, tmp []byte, unpack, pack Callback) error {
	if err := f.g.Process(src, dst, tmp, unpack, pack); err != nil {
		return wrapErr(err)
	}
	return nil
}
