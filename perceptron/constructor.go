package perceptron

import "errors"

// New constructs a perceptron of the given dimensionality. Weights start
// as all ones and the bias as zero.
func New(nfeatures int, rate float64) (p *Perceptron, err error) {
	if nfeatures < 1 {
		return nil, errors.New("nfeatures must be at least 1 (new Perceptron)")
	}
	if !(rate > 0) {
		return nil, errors.New("learning rate must be positive (new Perceptron)")
	}
	p = new(Perceptron)
	p.weights = make([]float64, nfeatures)
	for i := range p.weights {
		p.weights[i] = 1
	}
	p.bias = 0
	p.rate = rate
	return
}
