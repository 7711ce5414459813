package perceptron

import "github.com/neurlang/perceptron/sample"

// Train runs the classical perceptron learning rule: exactly epochs full
// passes over samples in the given order, updating weights and bias after
// every misclassified sample. Updates are online, so later samples in the
// same pass already see them. The label registry is seeded empty at the
// start of the call and persists across all passes.
//
// A dimension mismatch or a third distinct label aborts the call at the
// offending sample; updates made before it are kept.
func (p *Perceptron) Train(samples []sample.Sample, epochs int) error {
	var reg sample.Registry
	p.labels = &reg
	for epoch := 0; epoch < epochs; epoch++ {
		for _, s := range samples {
			if err := p.update(s, &reg); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Perceptron) update(s sample.Sample, reg *sample.Registry) error {
	target, err := s.BinaryLabel(reg)
	if err != nil {
		return err
	}
	features := s.FeatureVector()
	predicted, err := p.Classify(features)
	if err != nil {
		return err
	}
	// factor is 0 when the prediction is correct,
	//           +rate when the prediction is too small (false negative),
	//           -rate when the prediction is too big (false positive)
	factor := float64(target-predicted) * p.rate
	if factor == 0 {
		return nil
	}
	for i, component := range features {
		p.weights[i] += factor * component
	}
	p.bias += factor
	return nil
}

// Predict classifies a sample and resolves the class code back to a label
// string using the registry of the last Train call
func (p *Perceptron) Predict(s sample.Sample) (string, error) {
	if p.labels == nil {
		return "", ErrUntrained
	}
	code, err := p.Classify(s.FeatureVector())
	if err != nil {
		return "", err
	}
	return p.labels.Label(code)
}
