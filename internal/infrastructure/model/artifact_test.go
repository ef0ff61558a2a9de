package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaler_Transform(t *testing.T) {
	s := &Scaler{Mean: []float64{10, 20}, Scale: []float64{2, 5}}
	got, err := s.Transform([]float64{14, 10})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got[0], 1e-9)
	assert.InDelta(t, -2.0, got[1], 1e-9)
}

func TestScaler_LengthMismatch(t *testing.T) {
	s := &Scaler{Mean: []float64{10, 20}, Scale: []float64{2, 5}}
	_, err := s.Transform([]float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 2 features")
}

func TestClassifier_PredictProba(t *testing.T) {
	c := &Classifier{Coefficients: []float64{1, -1}, Intercept: 0}

	// z = 0 -> p = 0.5
	p, err := c.PredictProba([]float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-9)

	// z = 2 -> sigmoid(2)
	p, err = c.PredictProba([]float64{2, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.8807970779778823, p, 1e-9)
}

func TestClassifier_LengthMismatch(t *testing.T) {
	c := &Classifier{Coefficients: []float64{1, -1}}
	_, err := c.PredictProba([]float64{1, 2, 3})
	require.Error(t, err)
}

func TestLoadScaler(t *testing.T) {
	s, err := LoadScaler([]byte(`{"mean":[1,2],"scale":[1,1]}`))
	require.NoError(t, err)
	assert.Len(t, s.Mean, 2)

	_, err = LoadScaler([]byte(`{"mean":[1,2],"scale":[1]}`))
	assert.Error(t, err)

	_, err = LoadScaler([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadClassifier(t *testing.T) {
	c, err := LoadClassifier([]byte(`{"coefficients":[0.4,-0.2],"intercept":0.1}`))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, c.Intercept, 1e-9)

	_, err = LoadClassifier([]byte(`{"coefficients":[]}`))
	assert.Error(t, err)
}
