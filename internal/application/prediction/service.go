package prediction

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
)

// Scaler normalizes a raw feature vector before classification.
type Scaler interface {
	Transform(features []float64) ([]float64, error)
}

// Classifier returns the positive-class probability for a scaled vector.
type Classifier interface {
	PredictProba(features []float64) (float64, error)
}

type Service interface {
	// Predict returns the risk percentage for the feature vector.
	Predict(ctx context.Context, features []float64) (float64, error)
}

type service struct {
	scaler     Scaler
	classifier Classifier
}

// NewService builds the prediction service. Either collaborator may be nil
// when the trained artifacts are missing; Predict then serves random mock
// values so the rest of the product stays usable during development.
func NewService(scaler Scaler, classifier Classifier) Service {
	if scaler == nil || classifier == nil {
		slog.Warn("model artifacts not loaded, /predict will return mock data")
	}
	return &service{scaler: scaler, classifier: classifier}
}

func (s *service) Predict(ctx context.Context, features []float64) (float64, error) {
	if s.scaler == nil || s.classifier == nil {
		return mockRisk(), nil
	}

	scaled, err := s.scaler.Transform(features)
	if err != nil {
		return 0, err // surfaced as-is, including length mismatches
	}
	p, err := s.classifier.PredictProba(scaled)
	if err != nil {
		return 0, err
	}
	return round2(p * 100), nil
}

// mockRisk draws uniformly from [5.0, 85.0), the band clients already expect
// for placeholder predictions.
func mockRisk() float64 {
	return 5.0 + rand.Float64()*80.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
