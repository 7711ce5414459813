package perceptron

import "github.com/neurlang/perceptron/vector"

// Classify computes the class code of a feature vector: 1 when the
// weighted sum plus bias is positive, 0 otherwise. An exact zero sum
// classifies as 0. The perceptron is not mutated.
func (p *Perceptron) Classify(features []float64) (int, error) {
	if len(features) != len(p.weights) {
		return 0, ErrDimensionMismatch
	}
	dot := vector.Dot(p.weights, features) + p.bias
	if dot > 0 {
		return 1, nil
	}
	return 0, nil
}
