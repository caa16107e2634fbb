package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fraudlens/prediction-api/internal/assembler"
	"github.com/fraudlens/prediction-api/internal/classifier"
	"github.com/fraudlens/prediction-api/internal/encoder"
	"github.com/fraudlens/prediction-api/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClassifier struct {
	label int
	probs classifier.Probabilities
	err   error
}

func (s stubClassifier) PredictLabel(features []float64) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.label, nil
}

func (s stubClassifier) PredictProbabilities(features []float64) (classifier.Probabilities, error) {
	if s.err != nil {
		return classifier.Probabilities{}, s.err
	}
	return s.probs, nil
}

var fixedNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, model classifier.Classifier) PredictionService {
	t.Helper()
	enc, err := encoder.New([]string{"CASH_IN", "CASH_OUT", "DEBIT", "PAYMENT", "TRANSFER"})
	require.NoError(t, err)
	return NewPredictionService(PredictionServiceConfig{
		Logger:    zap.NewNop(),
		Assembler: assembler.New(enc),
		Model:     model,
		Now:       func() time.Time { return fixedNow },
	})
}

func validPayload() map[string]any {
	return map[string]any{
		"step":           float64(100),
		"type":           "TRANSFER",
		"amount":         1500.00,
		"oldbalanceOrg":  50000.00,
		"newbalanceOrig": 48500.00,
		"oldbalanceDest": 30000.00,
		"newbalanceDest": 31500.00,
		"currency":       "USD",
	}
}

func TestPredict_RoundTrip(t *testing.T) {
	svc := newService(t, stubClassifier{label: 0, probs: classifier.Probabilities{Normal: 0.978, Fraud: 0.022}})

	result, err := svc.Predict(context.Background(), "trace-1", validPayload())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.IsFraud)
	assert.Equal(t, pkg.OutcomeNormal, result.Prediction)
	assert.Equal(t, 2.2, result.FraudProbability)
	assert.Equal(t, 97.8, result.NormalProbability)
	assert.InDelta(t, 100.0, result.FraudProbability+result.NormalProbability, 0.01)
	assert.Equal(t, 97.8, result.Confidence)
	assert.Equal(t, "2026-08-31 12:00:00", result.Timestamp)
	assert.Equal(t, "USD", result.Currency)

	details := result.TransactionDetails
	assert.Equal(t, "TRANSFER", details.Type)
	assert.Equal(t, "$1,500.00", details.Amount)
	assert.Equal(t, 100, details.Step)
	assert.Equal(t, "$50,000.00", details.OldBalanceOrg)
	assert.Equal(t, "$48,500.00", details.NewBalanceOrig)
	assert.Equal(t, "$30,000.00", details.OldBalanceDest)
	assert.Equal(t, "$31,500.00", details.NewBalanceDest)
}

func TestPredict_FraudOutcome(t *testing.T) {
	svc := newService(t, stubClassifier{label: 1, probs: classifier.Probabilities{Normal: 0.1337, Fraud: 0.8663}})

	result, err := svc.Predict(context.Background(), "trace-1", validPayload())
	require.NoError(t, err)

	assert.True(t, result.IsFraud)
	assert.Equal(t, pkg.OutcomeFraudulent, result.Prediction)
	assert.Equal(t, 86.63, result.FraudProbability)
	assert.Equal(t, 13.37, result.NormalProbability)
	assert.Equal(t, 86.63, result.Confidence)
}

// Confidence is the larger of the two rounded percentages.
func TestPredict_ConfidenceIsMaxOfRounded(t *testing.T) {
	svc := newService(t, stubClassifier{label: 1, probs: classifier.Probabilities{Normal: 0.400004, Fraud: 0.599996}})

	result, err := svc.Predict(context.Background(), "trace-1", validPayload())
	require.NoError(t, err)

	assert.Equal(t, 60.0, result.FraudProbability)
	assert.Equal(t, 40.0, result.NormalProbability)
	assert.Equal(t, result.FraudProbability, result.Confidence)
}

func TestPredict_DefaultCurrency(t *testing.T) {
	svc := newService(t, stubClassifier{probs: classifier.Probabilities{Normal: 0.9, Fraud: 0.1}})
	payload := validPayload()
	delete(payload, "currency")

	result, err := svc.Predict(context.Background(), "trace-1", payload)
	require.NoError(t, err)
	assert.Equal(t, "USD", result.Currency)
	assert.Equal(t, "$1,500.00", result.TransactionDetails.Amount)
}

func TestPredict_UnknownCurrencySuffix(t *testing.T) {
	svc := newService(t, stubClassifier{probs: classifier.Probabilities{Normal: 0.9, Fraud: 0.1}})
	payload := validPayload()
	payload["currency"] = "AUD"

	result, err := svc.Predict(context.Background(), "trace-1", payload)
	require.NoError(t, err)
	assert.Equal(t, "AUD", result.Currency)
	assert.Equal(t, "1,500.00 AUD", result.TransactionDetails.Amount)
}

// Validation errors pass through untouched so the handler can surface the
// field-level message.
func TestPredict_ValidationErrorPropagates(t *testing.T) {
	svc := newService(t, stubClassifier{probs: classifier.Probabilities{Normal: 0.9, Fraud: 0.1}})
	payload := validPayload()
	delete(payload, "amount")

	_, err := svc.Predict(context.Background(), "trace-1", payload)
	require.Error(t, err)

	var appErr pkg.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkg.ErrMissingFieldCode, appErr.Code)
	assert.Equal(t, "missing required field: amount", appErr.Message)
}

func TestPredict_ClassifierFailureIsGeneric(t *testing.T) {
	svc := newService(t, stubClassifier{err: errors.New("corrupt tree state at node 17")})

	_, err := svc.Predict(context.Background(), "trace-1", validPayload())
	require.Error(t, err)

	var appErr pkg.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkg.ErrPredictionCode, appErr.Code)
	// Public message stays generic; the cause is only for server-side logs.
	assert.Equal(t, "prediction failed", appErr.Message)
}

func TestPredict_InvalidCategoryNeverReachesClassifier(t *testing.T) {
	calls := 0
	svc := newService(t, countingClassifier{calls: &calls})
	payload := validPayload()
	payload["type"] = "WIRE"

	_, err := svc.Predict(context.Background(), "trace-1", payload)
	require.Error(t, err)
	assert.Zero(t, calls)
}

type countingClassifier struct {
	calls *int
}

func (c countingClassifier) PredictLabel(features []float64) (int, error) {
	*c.calls++
	return 0, nil
}

func (c countingClassifier) PredictProbabilities(features []float64) (classifier.Probabilities, error) {
	*c.calls++
	return classifier.Probabilities{Normal: 1}, nil
}
