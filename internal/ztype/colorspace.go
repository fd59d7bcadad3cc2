package ztype

import "fmt"

// MatrixCoefficients selects the YUV<->RGB transform family, grounded on
// colorspace_param.h's MatrixCoefficients enum.
type MatrixCoefficients int

const (
	MatrixRGB MatrixCoefficients = iota
	Matrix601
	Matrix709
	Matrix2020NCL
	Matrix2020CL
)

func (m MatrixCoefficients) String() string {
	switch m {
	case MatrixRGB:
		return "rgb"
	case Matrix601:
		return "601"
	case Matrix709:
		return "709"
	case Matrix2020NCL:
		return "2020ncl"
	case Matrix2020CL:
		return "2020cl"
	default:
		return fmt.Sprintf("MatrixCoefficients(%d)", int(m))
	}
}

// TransferCharacteristics selects the opto-electronic transfer function.
type TransferCharacteristics int

const (
	TransferLinear TransferCharacteristics = iota
	Transfer709
)

func (t TransferCharacteristics) String() string {
	switch t {
	case TransferLinear:
		return "linear"
	case Transfer709:
		return "709"
	default:
		return fmt.Sprintf("TransferCharacteristics(%d)", int(t))
	}
}

// ColorPrimaries selects the RGB primaries and white point.
type ColorPrimaries int

const (
	PrimariesSMPTEC ColorPrimaries = iota
	Primaries709
	Primaries2020
)

func (p ColorPrimaries) String() string {
	switch p {
	case PrimariesSMPTEC:
		return "smpte_c"
	case Primaries709:
		return "709"
	case Primaries2020:
		return "2020"
	default:
		return fmt.Sprintf("ColorPrimaries(%d)", int(p))
	}
}

// Colorspace is a working colorspace: a (matrix, transfer, primaries)
// triple, grounded on colorspace_param.h's ColorspaceDefinition. Nodes in
// the colorspace conversion graph are values of this type.
type Colorspace struct {
	Matrix    MatrixCoefficients
	Transfer  TransferCharacteristics
	Primaries ColorPrimaries
}

// To returns a copy of c with its matrix replaced.
func (c Colorspace) To(matrix MatrixCoefficients) Colorspace {
	c.Matrix = matrix
	return c
}

// ToTransfer returns a copy of c with its transfer function replaced.
func (c Colorspace) ToTransfer(transfer TransferCharacteristics) Colorspace {
	c.Transfer = transfer
	return c
}

// ToPrimaries returns a copy of c with its primaries replaced.
func (c Colorspace) ToPrimaries(primaries ColorPrimaries) Colorspace {
	c.Primaries = primaries
	return c
}

// ToRGB returns c with its matrix set to MatrixRGB.
func (c Colorspace) ToRGB() Colorspace {
	return c.To(MatrixRGB)
}

// ToLinear returns c with its transfer function set to TransferLinear.
func (c Colorspace) ToLinear() Colorspace {
	return c.ToTransfer(TransferLinear)
}

// ColorFamily distinguishes how many color planes an image carries and
// how they are interpreted.
type ColorFamily int

const (
	ColorGrey ColorFamily = iota
	ColorRGB
	ColorYUV
)

func (c ColorFamily) String() string {
	switch c {
	case ColorGrey:
		return "grey"
	case ColorRGB:
		return "rgb"
	case ColorYUV:
		return "yuv"
	default:
		return fmt.Sprintf("ColorFamily(%d)", int(c))
	}
}

// FieldParity describes interlaced field ordering.
type FieldParity int

const (
	FieldProgressive FieldParity = iota
	FieldTop
	FieldBottom
)

// ChromaLocationW is the horizontal chroma siting.
type ChromaLocationW int

const (
	ChromaLeft ChromaLocationW = iota
	ChromaCenterW
)

// ChromaLocationH is the vertical chroma siting.
type ChromaLocationH int

const (
	ChromaCenterH ChromaLocationH = iota
	ChromaTop
	ChromaBottom
)
