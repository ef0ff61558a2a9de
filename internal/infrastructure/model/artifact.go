// Package model loads the pre-trained scaler and classifier artifacts.
//
// The artifacts are the JSON export of the training pipeline's
// StandardScaler and LogisticRegression: the scaler carries per-feature
// mean/scale, the classifier carries coefficients and an intercept for the
// positive class.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Scaler normalizes a raw feature vector: (x - mean) / scale per feature.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform returns the scaled copy of features. The length check mirrors
// what the training-side transform would reject.
func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(features))
	}
	out := make([]float64, len(features))
	for i, x := range features {
		out[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}

// Classifier is a binary logistic-regression model.
type Classifier struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// PredictProba returns the positive-class probability for the (already
// scaled) feature vector.
func (c *Classifier) PredictProba(features []float64) (float64, error) {
	if len(features) != len(c.Coefficients) {
		return 0, fmt.Errorf("classifier expects %d features, got %d", len(c.Coefficients), len(features))
	}
	z := c.Intercept
	for i, x := range features {
		z += c.Coefficients[i] * x
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// LoadScaler decodes a scaler artifact from raw JSON.
func LoadScaler(data []byte) (*Scaler, error) {
	var s Scaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scaler artifact: %w", err)
	}
	if len(s.Mean) == 0 || len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("scaler artifact malformed: %d means, %d scales", len(s.Mean), len(s.Scale))
	}
	return &s, nil
}

// LoadClassifier decodes a classifier artifact from raw JSON.
func LoadClassifier(data []byte) (*Classifier, error) {
	var c Classifier
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode classifier artifact: %w", err)
	}
	if len(c.Coefficients) == 0 {
		return nil, fmt.Errorf("classifier artifact has no coefficients")
	}
	return &c, nil
}

// LoadScalerFile reads and decodes a scaler artifact from disk.
func LoadScalerFile(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadScaler(data)
}

// LoadClassifierFile reads and decodes a classifier artifact from disk.
func LoadClassifierFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadClassifier(data)
}
