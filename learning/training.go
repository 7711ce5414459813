// Package learning implements the training stage of the perceptron
package learning

import "github.com/pkg/errors"

import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/sample"

// Training constructs a perceptron sized to the first sample and runs the
// configured number of epochs over samples. One epoch is driven at a time
// so the remaining mistake count can be logged after each pass. The epoch
// count always runs to completion, there is no convergence exit.
func (h *HyperParameters) Training(samples []sample.Sample) (*perceptron.Perceptron, error) {
	if len(samples) == 0 {
		return nil, errors.New("training needs at least one sample")
	}
	if h.Epochs < 0 {
		return nil, errors.New("epochs must not be negative")
	}
	p, err := perceptron.New(samples[0].NFeatures(), h.LearningRate)
	if err != nil {
		return nil, errors.Wrap(err, "training")
	}
	for epoch := 0; epoch < h.Epochs; epoch++ {
		if err := p.Train(samples, 1); err != nil {
			return nil, errors.Wrapf(err, "training epoch %d", epoch)
		}
		if h.l != nil {
			mistakes, err := Mistakes(p, samples)
			if err != nil {
				return nil, errors.Wrapf(err, "training epoch %d", epoch)
			}
			h.logf("epoch %d: %d mistakes of %d samples", epoch, mistakes, len(samples))
		}
	}
	return p, nil
}
