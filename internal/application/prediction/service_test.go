package prediction

import (
	"context"
	"errors"
	"testing"

	"github.com/endopredict/api/internal/infrastructure/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_FallbackRange(t *testing.T) {
	svc := NewService(nil, nil)
	for range 200 {
		v, err := svc.Predict(context.Background(), []float64{1, 2, 3})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 5.0)
		assert.Less(t, v, 85.0)
	}
}

func TestPredict_WithModel(t *testing.T) {
	// Identity scaler, classifier with z = 0 for zero input -> p = 0.5 -> 50.00.
	scaler := &model.Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}}
	clf := &model.Classifier{Coefficients: []float64{1, 1}, Intercept: 0}

	svc := NewService(scaler, clf)
	v, err := svc.Predict(context.Background(), []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)
}

func TestPredict_RoundsToTwoDecimals(t *testing.T) {
	scaler := &model.Scaler{Mean: []float64{0}, Scale: []float64{1}}
	clf := &model.Classifier{Coefficients: []float64{1}, Intercept: 0}

	svc := NewService(scaler, clf)
	v, err := svc.Predict(context.Background(), []float64{2})
	require.NoError(t, err)
	// sigmoid(2)*100 = 88.0797... -> 88.08
	assert.Equal(t, 88.08, v)
}

func TestPredict_LengthMismatchSurfaced(t *testing.T) {
	scaler := &model.Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 1}}
	clf := &model.Classifier{Coefficients: []float64{1, 1}, Intercept: 0}

	svc := NewService(scaler, clf)
	_, err := svc.Predict(context.Background(), []float64{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 2 features")
}

type failingClassifier struct{}

func (failingClassifier) PredictProba([]float64) (float64, error) {
	return 0, errors.New("singular matrix")
}

func TestPredict_ClassifierErrorSurfaced(t *testing.T) {
	scaler := &model.Scaler{Mean: []float64{0}, Scale: []float64{1}}
	svc := NewService(scaler, failingClassifier{})
	_, err := svc.Predict(context.Background(), []float64{1})
	require.EqualError(t, err, "singular matrix")
}
