//go:build !noasm && amd64

package vector

import "github.com/klauspost/cpuid/v2"

func init() {
	// Check if the CPU supports AVX2 with FMA
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3) {
		DotVectorized = dotUnrolled4
		dotVectorizedLanes = 4
	} else {
		DotVectorized = dotNotVectorized
		dotVectorizedLanes = 1
	}
}

// dotUnrolled4 keeps four independent accumulators so the multiply-adds
// pipeline without a loop-carried dependency
func dotUnrolled4(a, b []float64) float64 {
	var d0, d1, d2, d3 float64
	var i int
	for ; i+4 <= len(a); i += 4 {
		d0 += a[i] * b[i]
		d1 += a[i+1] * b[i+1]
		d2 += a[i+2] * b[i+2]
		d3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		d0 += a[i] * b[i]
	}
	return d0 + d1 + d2 + d3
}
