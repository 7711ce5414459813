// Package inference implements batch prediction over sample sets
package inference

import "sync"

import "github.com/neurlang/perceptron/parallel"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/sample"

// Model is anything that can turn a feature vector into a class code
type Model interface {
	Classify(features []float64) (int, error)
}

const limit = 1000

// Codes classifies every sample in set and returns the class codes in
// sample order. The model is only read, never mutated.
func Codes(m Model, set []sample.Sample) ([]int, error) {
	var codes = make([]int, len(set))
	var mu sync.Mutex
	var firstErr error
	parallel.ForEach(len(set), limit, func(i int) {
		code, err := m.Classify(set[i].FeatureVector())
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		codes[i] = code
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return codes, nil
}

// Labels classifies every sample in set and returns the predicted label
// strings in sample order
func Labels(p *perceptron.Perceptron, set []sample.Sample) ([]string, error) {
	var labels = make([]string, len(set))
	var mu sync.Mutex
	var firstErr error
	parallel.ForEach(len(set), limit, func(i int) {
		label, err := p.Predict(set[i])
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		labels[i] = label
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return labels, nil
}
