//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

// Detected probes the running CPU's feature bits once, matching the
// teacher's cpuid_amd64.go probe-at-init pattern, and returns the richest
// Class the hardware and OS support.
func Detected() Class {
	switch {
	case cpu.X86.HasAVX2:
		return AVX2
	case cpu.X86.HasAVX && cpu.X86.HasF16C:
		return F16C
	case cpu.X86.HasAVX:
		return AVX
	case cpu.X86.HasSSE41:
		return SSE41
	case cpu.X86.HasSSE2:
		return SSE2
	default:
		return None
	}
}
