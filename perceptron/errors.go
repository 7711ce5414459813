package perceptron

import "errors"

import "github.com/neurlang/perceptron/sample"

// ErrDimensionMismatch reports a feature vector whose length differs from
// the weight vector's
var ErrDimensionMismatch = errors.New("feature vector length does not match weight vector length")

// ErrUnsupportedLabelCount is sample.ErrUnsupportedLabelCount re-exported
// for callers matching train failures with errors.Is
var ErrUnsupportedLabelCount = sample.ErrUnsupportedLabelCount

// ErrUntrained reports use of the label mapping before any Train call
var ErrUntrained = errors.New("Train must be called before predicting labels")
