// Package classifier defines the model contract the prediction pipeline
// depends on, plus the random-forest implementation loaded from a persisted
// artifact.
package classifier

// Probabilities is the calibrated class distribution for a single
// transaction. Normal and Fraud sum to 1.
type Probabilities struct {
	Normal float64
	Fraud  float64
}

// Classifier is the capability contract the pipeline depends on. Any model
// that can label a feature vector and report class probabilities can serve,
// regardless of algorithm or persistence format.
type Classifier interface {
	PredictLabel(features []float64) (int, error)
	PredictProbabilities(features []float64) (Probabilities, error)
}
