// Package sample implements the labeled sample type
package sample

import "fmt"

// Sample is one labeled data point: a feature vector and a class label.
// It is immutable after construction.
type Sample struct {
	featureVector []float64
	label         string
}

func New(featureVector []float64, label string) Sample {
	var features = make([]float64, len(featureVector))
	copy(features, featureVector)
	return Sample{featureVector: features, label: label}
}

// FeatureVector returns a copy of the feature vector
func (s Sample) FeatureVector() (features []float64) {
	features = make([]float64, len(s.featureVector))
	copy(features, s.featureVector)
	return
}

// Feature gets the feature at dimension n
func (s Sample) Feature(n int) float64 {
	return s.featureVector[n]
}

// NFeatures gets the dimensionality of the sample
func (s Sample) NFeatures() int {
	return len(s.featureVector)
}

// Label gets the class label string
func (s Sample) Label() string {
	return s.label
}

// BinaryLabel resolves the sample's label to class code 0 or 1 using reg.
// A label not yet in reg is registered with the next free code.
func (s Sample) BinaryLabel(reg *Registry) (int, error) {
	return reg.Code(s.label)
}

func (s Sample) String() string {
	return fmt.Sprintf("Sample(%v, %q)", s.featureVector, s.label)
}
