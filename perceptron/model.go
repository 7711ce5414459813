// Package perceptron implements a single-layer binary perceptron
package perceptron

import "github.com/neurlang/perceptron/sample"

// Perceptron represents one linear binary classifier in memory: a weight
// vector, a bias, and the learning rate used by Train. The label registry
// of the most recent Train call is kept so Predict can map class codes
// back to label strings.
type Perceptron struct {
	weights []float64
	bias    float64
	rate    float64

	labels *sample.Registry
}

// Weights returns a copy of the weight vector
func (p *Perceptron) Weights() (weights []float64) {
	weights = make([]float64, len(p.weights))
	copy(weights, p.weights)
	return
}

// Bias gets the bias scalar
func (p *Perceptron) Bias() float64 {
	return p.bias
}

// LearningRate gets the learning rate
func (p *Perceptron) LearningRate() float64 {
	return p.rate
}

// NFeatures gets the dimensionality the perceptron accepts
func (p *Perceptron) NFeatures() int {
	return len(p.weights)
}

// Labels returns the label registry captured by the last Train call,
// or nil if the perceptron was never trained
func (p *Perceptron) Labels() *sample.Registry {
	return p.labels
}

// SetWeights replaces the weight vector
func (p *Perceptron) SetWeights(weights []float64) {
	p.weights = make([]float64, len(weights))
	copy(p.weights, weights)
}

// SetBias replaces the bias scalar
func (p *Perceptron) SetBias(bias float64) {
	p.bias = bias
}

// SetLearningRate replaces the learning rate
func (p *Perceptron) SetLearningRate(rate float64) {
	p.rate = rate
}
