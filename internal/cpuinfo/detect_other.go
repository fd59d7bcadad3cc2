//go:build !amd64

package cpuinfo

// Detected always returns None on non-x86 platforms: the x86 family
// identifiers (SSE2, SSE41, AVX, F16C, AVX2) have no meaning there.
func Detected() Class {
	return None
}
