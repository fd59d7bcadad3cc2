package depth

import (
	"unsafe"

	"github.com/deepteams/zimg/internal/filter"
	"github.com/deepteams/zimg/internal/halffloat"
)

func readSample(row []byte, t filter.PixelType, idx int) float64 {
	switch t {
	case filter.Byte:
		return float64(row[idx])
	case filter.Word:
		w := unsafe.Slice((*uint16)(unsafe.Pointer(&row[0])), idx+1)
		return float64(w[idx])
	case filter.Half:
		w := unsafe.Slice((*uint16)(unsafe.Pointer(&row[0])), idx+1)
		return float64(halffloat.ToFloat32(w[idx]))
	case filter.Float:
		f := unsafe.Slice((*float32)(unsafe.Pointer(&row[0])), idx+1)
		return float64(f[idx])
	default:
		return 0
	}
}

func writeSample(row []byte, t filter.PixelType, idx int, v float64) {
	switch t {
	case filter.Byte:
		row[idx] = byte(v)
	case filter.Word:
		w := unsafe.Slice((*uint16)(unsafe.Pointer(&row[0])), idx+1)
		w[idx] = uint16(v)
	case filter.Half:
		w := unsafe.Slice((*uint16)(unsafe.Pointer(&row[0])), idx+1)
		w[idx] = halffloat.FromFloat32(float32(v))
	case filter.Float:
		f := unsafe.Slice((*float32)(unsafe.Pointer(&row[0])), idx+1)
		f[idx] = float32(v)
	}
}
