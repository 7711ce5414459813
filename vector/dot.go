// Package vector implements the dot product used by the perceptron
package vector

// Dot computes the dot product of two equal-length vectors.
// Length equality is the caller's responsibility.
func Dot(a, b []float64) float64 {
	return DotVectorized(a, b)
}

// DotVectorized implements the dot product kernel, unrolled on platforms
// where the CPU profits from it
var DotVectorized func(a, b []float64) float64 = dotNotVectorized

var dotVectorizedLanes int = 1

// DotVectorizedLanes reports the number of independent accumulators the
// selected kernel uses. Can't return 0.
func DotVectorizedLanes() int {
	return dotVectorizedLanes
}

func dotNotVectorized(a, b []float64) (dot float64) {
	for i := range a {
		dot += a[i] * b[i]
	}
	return
}
