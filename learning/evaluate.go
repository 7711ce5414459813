package learning

import "github.com/pkg/errors"

import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/sample"

// Evaluate reports the success rate of m over samples as a percentage.
// Target codes come from a fresh first-seen label registry, the same
// assignment a training pass over samples would use.
func Evaluate(m inference.Model, samples []sample.Sample) (int, error) {
	if len(samples) == 0 {
		return 0, errors.New("evaluate needs at least one sample")
	}
	predicted, err := inference.Codes(m, samples)
	if err != nil {
		return 0, errors.Wrap(err, "evaluate")
	}
	var reg sample.Registry
	var correct int
	for i, s := range samples {
		target, err := s.BinaryLabel(&reg)
		if err != nil {
			return 0, errors.Wrap(err, "evaluate")
		}
		if predicted[i] == target {
			correct++
		}
	}
	return 100 * correct / len(samples), nil
}

// Mistakes counts the samples m currently misclassifies
func Mistakes(m inference.Model, samples []sample.Sample) (int, error) {
	predicted, err := inference.Codes(m, samples)
	if err != nil {
		return 0, errors.Wrap(err, "mistakes")
	}
	var reg sample.Registry
	var mistakes int
	for i, s := range samples {
		target, err := s.BinaryLabel(&reg)
		if err != nil {
			return 0, errors.Wrap(err, "mistakes")
		}
		if predicted[i] != target {
			mistakes++
		}
	}
	return mistakes, nil
}
