package views

import "github.com/fraudlens/prediction-api/pkg"

// TransactionDetails echoes the request back with monetary fields rendered
// in the request's currency. Type stays the original string, not the
// encoded integer.
type TransactionDetails struct {
	Type           string `json:"type"`
	Amount         string `json:"amount"`
	Step           int    `json:"step"`
	OldBalanceOrg  string `json:"oldbalanceOrg"`
	NewBalanceOrig string `json:"newbalanceOrig"`
	OldBalanceDest string `json:"oldbalanceDest"`
	NewBalanceDest string `json:"newbalanceDest"`
}

// PredictionResult is the successful response of the predict endpoint.
// Probabilities are percentages rounded to two decimals and sum to 100.
type PredictionResult struct {
	Success            bool                  `json:"success"`
	IsFraud            bool                  `json:"is_fraud"`
	FraudProbability   float64               `json:"fraud_probability"`
	NormalProbability  float64               `json:"normal_probability"`
	Prediction         pkg.PredictionOutcome `json:"prediction"`
	Confidence         float64               `json:"confidence"`
	Timestamp          string                `json:"timestamp"`
	Currency           string                `json:"currency"`
	TransactionDetails TransactionDetails    `json:"transaction_details"`
}

// HealthStatus reports whether the fitted artifacts are loaded.
type HealthStatus struct {
	Status        string `json:"status"`
	ModelLoaded   bool   `json:"model_loaded"`
	EncoderLoaded bool   `json:"encoder_loaded"`
	Timestamp     string `json:"timestamp"`
}

// ModelStats surfaces training metadata from the persisted model artifact.
type ModelStats struct {
	ModelType        string             `json:"model_type"`
	Features         []string           `json:"features"`
	TransactionTypes []string           `json:"transaction_types"`
	Metrics          map[string]float64 `json:"metrics"`
	TrainingDate     string             `json:"training_date"`
	DatasetSize      string             `json:"dataset_size"`
	ModelStatus      string             `json:"model_status"`
}
