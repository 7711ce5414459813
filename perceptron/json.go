package perceptron

import "encoding/json"
import "os"

import "github.com/neurlang/perceptron/sample"

type modelJSON struct {
	Weights      []float64 `json:"weights"`
	Bias         float64   `json:"bias"`
	LearningRate float64   `json:"learning_rate"`
	Labels       []string  `json:"labels,omitempty"`
}

// WriteWeightsToFile writes the model parameters to a json file
func (p *Perceptron) WriteWeightsToFile(name string) error {
	var m = modelJSON{
		Weights:      p.Weights(),
		Bias:         p.bias,
		LearningRate: p.rate,
	}
	if p.labels != nil {
		m.Labels = p.labels.Labels()
	}
	buf, err := json.MarshalIndent(&m, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(name, buf, 0666)
}

// ReadWeightsFromFile loads a model written by WriteWeightsToFile
func ReadWeightsFromFile(name string) (p *Perceptron, err error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var m modelJSON
	if err = json.Unmarshal(buf, &m); err != nil {
		return nil, err
	}
	p, err = New(len(m.Weights), m.LearningRate)
	if err != nil {
		return nil, err
	}
	p.SetWeights(m.Weights)
	p.SetBias(m.Bias)
	if len(m.Labels) > 0 {
		var reg sample.Registry
		for _, label := range m.Labels {
			if _, err = reg.Code(label); err != nil {
				return nil, err
			}
		}
		p.labels = &reg
	}
	return
}
