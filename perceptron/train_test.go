package perceptron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/perceptron/sample"
)

func TestTrainZeroEpochs(t *testing.T) {
	p, _ := New(1, 1)
	samples := []sample.Sample{sample.New([]float64{5}, "pos")}

	err := p.Train(samples, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, []float64{1}, p.Weights())
	assert.Equal(t, 0.0, p.Bias())

	err = p.Train(samples, -3)
	assert.Equal(t, nil, err)
	assert.Equal(t, []float64{1}, p.Weights())
	assert.Equal(t, 0.0, p.Bias())
}

func TestTrainCorrectSampleNoChange(t *testing.T) {
	p, _ := New(1, 1)
	// weights [1], bias 0: dot of {-1} is -1, class 0, which is the
	// first-seen label's code
	samples := []sample.Sample{sample.New([]float64{-1}, "neg")}

	err := p.Train(samples, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, []float64{1}, p.Weights())
	assert.Equal(t, 0.0, p.Bias())
}

func TestTrainFalseNegativeUpdate(t *testing.T) {
	p, _ := New(2, 0.5)
	p.SetWeights([]float64{0, 0})
	p.SetBias(0)
	// first sample pins "neg" to class 0 without updating: dot 0 is
	// already class 0. The second pins "pos" to class 1 and is
	// misclassified as 0, a false negative.
	samples := []sample.Sample{
		sample.New([]float64{0, 0}, "neg"),
		sample.New([]float64{2, 4}, "pos"),
	}

	err := p.Train(samples, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, []float64{0.5 * 2, 0.5 * 4}, p.Weights())
	assert.Equal(t, 0.5, p.Bias())
}

func TestTrainFalsePositiveUpdate(t *testing.T) {
	p, _ := New(2, 0.5)
	p.SetWeights([]float64{1, 1})
	p.SetBias(0)
	// "neg" is class 0 but {2, 4} lands at dot 6, class 1, a false
	// positive
	samples := []sample.Sample{
		sample.New([]float64{2, 4}, "neg"),
	}

	err := p.Train(samples, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, []float64{1 - 0.5*2, 1 - 0.5*4}, p.Weights())
	assert.Equal(t, -0.5, p.Bias())
}

func TestTrainSeparable(t *testing.T) {
	p, _ := New(1, 1)
	samples := []sample.Sample{
		sample.New([]float64{-1}, "neg"),
		sample.New([]float64{1}, "pos"),
	}

	err := p.Train(samples, 10)
	require.NoError(t, err)

	code, err := p.Classify([]float64{-5})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, code)

	code, err = p.Classify([]float64{5})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, code)
}

func TestTrainThirdLabelAborts(t *testing.T) {
	head := []sample.Sample{
		sample.New([]float64{-1}, "a"),
		sample.New([]float64{1}, "b"),
	}

	// state after the samples preceding the bad label
	want, _ := New(1, 1)
	require.NoError(t, want.Train(head, 1))

	p, _ := New(1, 1)
	samples := append(append([]sample.Sample{}, head...),
		sample.New([]float64{1}, "c"),
		// would update if it were reached
		sample.New([]float64{-10}, "b"),
	)

	err := p.Train(samples, 1)
	assert.Equal(t, ErrUnsupportedLabelCount, err)

	// updates made before the offending sample are kept, nothing after
	// it ran
	assert.Equal(t, want.Weights(), p.Weights())
	assert.Equal(t, want.Bias(), p.Bias())
}

func TestTrainDimensionMismatchAborts(t *testing.T) {
	p, _ := New(2, 1)
	samples := []sample.Sample{
		sample.New([]float64{1, 1}, "a"),
		sample.New([]float64{1}, "b"),
	}

	err := p.Train(samples, 1)
	assert.Equal(t, ErrDimensionMismatch, err)
}

func TestTrainRegistryPersistsAcrossEpochs(t *testing.T) {
	p, _ := New(1, 0.25)
	samples := []sample.Sample{
		sample.New([]float64{-1}, "neg"),
		sample.New([]float64{1}, "pos"),
	}

	require.NoError(t, p.Train(samples, 3))
	require.NotNil(t, p.Labels())
	assert.Equal(t, []string{"neg", "pos"}, p.Labels().Labels())
}

func TestPredict(t *testing.T) {
	p, _ := New(1, 1)

	_, err := p.Predict(sample.New([]float64{1}, ""))
	assert.Equal(t, ErrUntrained, err)

	samples := []sample.Sample{
		sample.New([]float64{-1}, "neg"),
		sample.New([]float64{1}, "pos"),
	}
	require.NoError(t, p.Train(samples, 10))

	label, err := p.Predict(sample.New([]float64{-5}, ""))
	assert.Equal(t, nil, err)
	assert.Equal(t, "neg", label)

	label, err = p.Predict(sample.New([]float64{5}, ""))
	assert.Equal(t, nil, err)
	assert.Equal(t, "pos", label)

	_, err = p.Predict(sample.New([]float64{1, 2}, ""))
	assert.Equal(t, ErrDimensionMismatch, err)
}

// a second Train call continues from the current parameters with a fresh
// label registry
func TestTrainResumes(t *testing.T) {
	p, _ := New(1, 1)
	first := []sample.Sample{
		sample.New([]float64{-1}, "neg"),
		sample.New([]float64{1}, "pos"),
	}
	require.NoError(t, p.Train(first, 10))
	weights := p.Weights()
	bias := p.Bias()

	// the labels differ but map to the same codes by first-seen order
	second := []sample.Sample{
		sample.New([]float64{-1}, "down"),
		sample.New([]float64{1}, "up"),
	}
	require.NoError(t, p.Train(second, 1))

	// already separated, so nothing moved
	assert.Equal(t, weights, p.Weights())
	assert.Equal(t, bias, p.Bias())
	assert.Equal(t, []string{"down", "up"}, p.Labels().Labels())
}
