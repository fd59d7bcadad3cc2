package ztype

import "fmt"

// ImageFormat fully describes one image buffer: its geometry, sample
// representation, and colorimetry.
type ImageFormat struct {
	Width, Height int

	PixelType PixelType
	Depth     int
	FullRange bool

	ColorFamily ColorFamily
	Colorspace  Colorspace

	// SubsampleW and SubsampleH give the chroma plane's subsampling
	// factors as powers of two (0 = no subsampling). Meaningless for
	// ColorGrey and ColorRGB, which never subsample.
	SubsampleW, SubsampleH int

	FieldParity    FieldParity
	ChromaLocW     ChromaLocationW
	ChromaLocH     ChromaLocationH
}

// LumaFormat returns the PixelFormat of the luma/RGB planes.
func (f ImageFormat) LumaFormat() PixelFormat {
	return PixelFormat{Type: f.PixelType, Depth: f.Depth, FullRange: f.FullRange}
}

// ChromaFormat returns the PixelFormat of the chroma planes, offset to a
// signed zero point.
func (f ImageFormat) ChromaFormat() PixelFormat {
	return PixelFormat{Type: f.PixelType, Depth: f.Depth, FullRange: f.FullRange, Chroma: true}
}

// Validate enforces the structural invariants an ImageFormat must
// satisfy: grey/RGB images cannot be subsampled, an RGB matrix
// implies ColorRGB, vertical subsampling requires progressive scan, the
// depth must fit the pixel type, and constant-luminance 2020 cannot pair
// with a linear transfer function.
func (f ImageFormat) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("ztype: non-positive dimensions %dx%d", f.Width, f.Height)
	}
	if err := f.LumaFormat().Validate(); err != nil {
		return err
	}

	switch f.ColorFamily {
	case ColorGrey, ColorRGB:
		if f.SubsampleW != 0 || f.SubsampleH != 0 {
			return fmt.Errorf("ztype: %v cannot be subsampled", f.ColorFamily)
		}
	case ColorYUV:
		if f.SubsampleW < 0 || f.SubsampleH < 0 {
			return fmt.Errorf("ztype: negative chroma subsampling")
		}
	default:
		return fmt.Errorf("ztype: unknown color family %v", f.ColorFamily)
	}

	if f.Colorspace.Matrix == MatrixRGB && f.ColorFamily != ColorRGB {
		return fmt.Errorf("ztype: MatrixRGB requires ColorRGB, got %v", f.ColorFamily)
	}
	if f.ColorFamily == ColorRGB && f.Colorspace.Matrix != MatrixRGB {
		return fmt.Errorf("ztype: ColorRGB requires MatrixRGB, got %v", f.Colorspace.Matrix)
	}

	if f.SubsampleH > 0 && f.FieldParity != FieldProgressive {
		return fmt.Errorf("ztype: vertical chroma subsampling requires progressive scan")
	}

	if f.Colorspace.Matrix == Matrix2020CL && f.Colorspace.Transfer == TransferLinear {
		return fmt.Errorf("ztype: constant-luminance 2020 matrix is incompatible with a linear transfer function")
	}

	if f.Height%(1<<uint(f.SubsampleH)) != 0 {
		return fmt.Errorf("ztype: height %d not a multiple of vertical subsampling factor %d", f.Height, 1<<uint(f.SubsampleH))
	}
	if f.Width%(1<<uint(f.SubsampleW)) != 0 {
		return fmt.Errorf("ztype: width %d not a multiple of horizontal subsampling factor %d", f.Width, 1<<uint(f.SubsampleW))
	}

	return nil
}

// NumPlanes returns the number of planes this format carries: 1 for
// ColorGrey, 3 for ColorRGB and ColorYUV.
func (f ImageFormat) NumPlanes() int {
	if f.ColorFamily == ColorGrey {
		return 1
	}
	return 3
}

// PlaneDimensions returns the width and height of plane p (0 = luma/R,
// 1 = U/G, 2 = V/B), accounting for chroma subsampling.
func (f ImageFormat) PlaneDimensions(p int) (width, height int) {
	if p == 0 || f.ColorFamily != ColorYUV {
		return f.Width, f.Height
	}
	return f.Width >> uint(f.SubsampleW), f.Height >> uint(f.SubsampleH)
}
