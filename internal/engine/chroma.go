package engine

import "github.com/deepteams/zimg/internal/ztype"

// chromaShiftW returns the sub-pixel horizontal shift (in chroma-plane
// pixel units) implied by a chroma siting: left siting shifts by -0.5
// sample relative to a co-sited center grid, center needs no shift. The
// shift is zero whenever the plane isn't subsampled, since siting is
// only meaningful relative to a coarser chroma grid.
func chromaShiftW(loc ztype.ChromaLocationW, subsampleW int) float64 {
	if subsampleW == 0 {
		return 0
	}
	if loc == ztype.ChromaLeft {
		return -0.5
	}
	return 0
}

// chromaShiftH returns the sub-pixel vertical shift implied by a
// chroma siting and field parity: top siting shifts -0.5, bottom +0.5,
// center none, further halved and offset by the field's own parity
// shift when the source is interlaced. The interlaced branch is
// unreachable for any format that passes ImageFormat.Validate
// (vertical subsampling requires progressive parity), but is kept for
// completeness against the general formula.
func chromaShiftH(loc ztype.ChromaLocationH, subsampleH int, parity ztype.FieldParity) float64 {
	if subsampleH == 0 {
		return 0
	}

	var raw float64
	switch loc {
	case ztype.ChromaTop:
		raw = -0.5
	case ztype.ChromaBottom:
		raw = 0.5
	default:
		raw = 0
	}

	switch parity {
	case ztype.FieldTop:
		return (raw - 0.5) / 2
	case ztype.FieldBottom:
		return (raw + 0.5) / 2
	default:
		return raw
	}
}
