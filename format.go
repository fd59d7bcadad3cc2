package zimg

import (
	zfilter "github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/ztype"
)

// PixelType is one of the four sample representations a buffer can
// store: Byte, Word (16-bit integer), Half, or Float.
type PixelType = ztype.PixelType

const (
	Byte  = ztype.Byte
	Word  = ztype.Word
	Half  = ztype.Half
	Float = ztype.Float
)

// PixelFormat describes how samples of a PixelType map to values: bit
// depth, full/studio range, and (for chroma planes) a signed zero
// point.
type PixelFormat = ztype.PixelFormat

// DefaultPixelFormat returns the canonical format for a pixel type:
// full bit width, full range, non-chroma.
func DefaultPixelFormat(t PixelType) PixelFormat { return ztype.Default(t) }

// MatrixCoefficients selects the YUV<->RGB transform family.
type MatrixCoefficients = ztype.MatrixCoefficients

const (
	MatrixRGB     = ztype.MatrixRGB
	Matrix601     = ztype.Matrix601
	Matrix709     = ztype.Matrix709
	Matrix2020NCL = ztype.Matrix2020NCL
	Matrix2020CL  = ztype.Matrix2020CL
)

// TransferCharacteristics selects the opto-electronic transfer
// function.
type TransferCharacteristics = ztype.TransferCharacteristics

const (
	TransferLinear = ztype.TransferLinear
	Transfer709    = ztype.Transfer709
)

// ColorPrimaries selects the RGB primaries and white point.
type ColorPrimaries = ztype.ColorPrimaries

const (
	PrimariesSMPTEC = ztype.PrimariesSMPTEC
	Primaries709    = ztype.Primaries709
	Primaries2020   = ztype.Primaries2020
)

// Colorspace is a (matrix, transfer, primaries) triple identifying one
// working colorspace.
type Colorspace = ztype.Colorspace

// ColorFamily distinguishes how many color planes an image carries and
// how they are interpreted: grey (one plane), RGB, or YUV.
type ColorFamily = ztype.ColorFamily

const (
	ColorGrey = ztype.ColorGrey
	ColorRGB  = ztype.ColorRGB
	ColorYUV  = ztype.ColorYUV
)

// FieldParity describes interlaced field ordering.
type FieldParity = ztype.FieldParity

const (
	FieldProgressive = ztype.FieldProgressive
	FieldTop         = ztype.FieldTop
	FieldBottom      = ztype.FieldBottom
)

// ChromaLocationW is the horizontal chroma siting.
type ChromaLocationW = ztype.ChromaLocationW

const (
	ChromaLeft    = ztype.ChromaLeft
	ChromaCenterW = ztype.ChromaCenterW
)

// ChromaLocationH is the vertical chroma siting.
type ChromaLocationH = ztype.ChromaLocationH

const (
	ChromaCenterH = ztype.ChromaCenterH
	ChromaTop     = ztype.ChromaTop
	ChromaBottom  = ztype.ChromaBottom
)

// ImageFormat fully describes one image buffer: its geometry, sample
// representation, and colorimetry. Validate reports whether a format
// is internally consistent (dimensions positive, subsampling only on
// YUV, depth within the pixel type's bit width, and so on); NewFilterGraph
// validates both endpoints before building anything.
type ImageFormat = ztype.ImageFormat

// ImageBuffer is a filter graph's view of an image: one [Plane] per
// color plane (only the first is used for grey images). Callers
// allocate planes sized to the width/height/PixelType.Size() the
// corresponding ImageFormat implies - [ImageFormat.PlaneDimensions]
// gives subsampled chroma planes their own, smaller geometry.
type ImageBuffer = zfilter.Buffer

// Plane is one color plane: a row-major byte buffer with its stride in
// bytes. Mask is zfilter.NoFold for a fully materialized plane, or a
// (2^k-1) row mask for a circular buffer that folds row n onto row (n
// & Mask) - used internally to stream a graph through fixed-size
// windows instead of materializing whole planes.
type Plane = zfilter.Plane

// NoFold is the Plane.Mask value meaning "this plane is fully
// materialized; every row index maps to itself".
const NoFold = zfilter.NoFold
