// Package blobs implements a synthetic two-cluster dataset
package blobs

import "golang.org/x/exp/rand"

import "gonum.org/v1/gonum/stat/distuv"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/sample"

const LabelLeft = "left"
const LabelRight = "right"

// centers far enough apart that the clusters stay linearly separable
// for the unit sigma below
const center = 4.0
const sigma = 1.0

// Two generates n samples per class: two 2-d Gaussian blobs centered at
// (-center, 0) and (+center, 0). The same seed reproduces the same set.
func Two(n int, seed uint64) (ret datasets.Dataset) {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(seed)}
	for i := 0; i < n; i++ {
		ret = append(ret, sample.New([]float64{-center + noise.Rand(), noise.Rand()}, LabelLeft))
		ret = append(ret, sample.New([]float64{center + noise.Rand(), noise.Rand()}, LabelRight))
	}
	return
}
