// Package datasets implements the labeled dataset type
package datasets

import "math/rand"

import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/sample"

type Dataset []sample.Sample

// Labels returns the distinct labels of d in first-seen order
func (d Dataset) Labels() (labels []string) {
	for _, s := range d {
		var seen bool
		for _, known := range labels {
			if known == s.Label() {
				seen = true
				break
			}
		}
		if !seen {
			labels = append(labels, s.Label())
		}
	}
	return
}

// Split splits the dataset into one dataset per label
func (d Dataset) Split() (o map[string]Dataset) {
	o = make(map[string]Dataset)
	for _, s := range d {
		o[s.Label()] = append(o[s.Label()], s)
	}
	return
}

// Balance duplicates random samples of the smaller class until both
// classes are the same size. Datasets without exactly two labels are
// returned unchanged.
func (d Dataset) Balance() Dataset {
	var split = d.Split()
	if len(split) != 2 {
		return d
	}
	labels := d.Labels()
	a, b := split[labels[0]], split[labels[1]]
	if len(a) == len(b) {
		return d
	}
	small := a
	if len(b) < len(a) {
		small = b
	}
	o := make(Dataset, len(d))
	copy(o, d)
	for need := len(a) + len(b) - 2*len(small); need > 0; need-- {
		o = append(o, small[rand.Intn(len(small))])
	}
	return o
}

// Validate reports the first sample whose dimensionality differs from
// nfeatures, or a label set that is not binary, the way a training pass
// would, but without touching any model.
func (d Dataset) Validate(nfeatures int) error {
	var reg sample.Registry
	for _, s := range d {
		if s.NFeatures() != nfeatures {
			return perceptron.ErrDimensionMismatch
		}
		if _, err := s.BinaryLabel(&reg); err != nil {
			return err
		}
	}
	return nil
}
