// Package logic implements the two-input logic gate datasets
package logic

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/sample"

const LabelLow = "low"
const LabelHigh = "high"

func gate(truth [4]bool) (ret datasets.Dataset) {
	var inputs = [4][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, features := range inputs {
		label := LabelLow
		if truth[i] {
			label = LabelHigh
		}
		ret = append(ret, sample.New(features, label))
	}
	return
}

// And is the two-input AND gate, linearly separable
func And() datasets.Dataset {
	return gate([4]bool{false, false, false, true})
}

// Or is the two-input OR gate, linearly separable
func Or() datasets.Dataset {
	return gate([4]bool{false, true, true, true})
}
