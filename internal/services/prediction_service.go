package services

import (
	"context"
	"math"
	"time"

	"github.com/fraudlens/prediction-api/internal/assembler"
	"github.com/fraudlens/prediction-api/internal/classifier"
	"github.com/fraudlens/prediction-api/internal/currency"
	"github.com/fraudlens/prediction-api/internal/observability"
	"github.com/fraudlens/prediction-api/pkg"
	"github.com/fraudlens/prediction-api/pkg/views"
	"go.uber.org/zap"
)

// PredictionService runs the full pipeline for one payload: validate,
// encode, classify, format. It holds no per-request state and is safe for
// concurrent use.
type PredictionService interface {
	Predict(ctx context.Context, traceID string, payload map[string]any) (*views.PredictionResult, error)
}

// PredictionServiceConfig holds the dependencies of the prediction pipeline.
type PredictionServiceConfig struct {
	Logger    *zap.Logger
	Assembler *assembler.Assembler
	Model     classifier.Classifier
	Now       func() time.Time // defaults to time.Now
}

// NewPredictionService creates a new instance of PredictionService.
func NewPredictionService(cfg PredictionServiceConfig) PredictionService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &predictionService{
		logger: cfg.Logger,
		asm:    cfg.Assembler,
		model:  cfg.Model,
		now:    cfg.Now,
	}
}

type predictionService struct {
	logger *zap.Logger
	asm    *assembler.Assembler
	model  classifier.Classifier
	now    func() time.Time
}

func (s *predictionService) Predict(ctx context.Context, traceID string, payload map[string]any) (*views.PredictionResult, error) {
	tx, features, err := s.asm.Assemble(payload)
	if err != nil {
		observability.PredictionFailures.WithLabelValues("validation").Inc()
		return nil, err
	}

	start := time.Now()
	label, err := s.model.PredictLabel(features)
	if err != nil {
		return nil, s.inferenceError(traceID, err)
	}
	probs, err := s.model.PredictProbabilities(features)
	if err != nil {
		return nil, s.inferenceError(traceID, err)
	}
	observability.InferenceLatency.Observe(time.Since(start).Seconds())

	isFraud := label == 1
	fraudPct := round2(probs.Fraud * 100)
	normalPct := round2(probs.Normal * 100)
	// Confidence is computed over the rounded percentages so the response is
	// internally consistent.
	confidence := math.Max(fraudPct, normalPct)

	outcome := pkg.OutcomeNormal
	if isFraud {
		outcome = pkg.OutcomeFraudulent
	}
	observability.PredictionsTotal.WithLabelValues(string(outcome)).Inc()

	result := &views.PredictionResult{
		Success:           true,
		IsFraud:           isFraud,
		FraudProbability:  fraudPct,
		NormalProbability: normalPct,
		Prediction:        outcome,
		Confidence:        confidence,
		Timestamp:         s.now().Format(pkg.TimestampLayout),
		Currency:          tx.Currency,
		TransactionDetails: views.TransactionDetails{
			Type:           tx.Type,
			Amount:         currency.Format(tx.Amount, tx.Currency),
			Step:           tx.Step,
			OldBalanceOrg:  currency.Format(tx.OldBalanceOrg, tx.Currency),
			NewBalanceOrig: currency.Format(tx.NewBalanceOrig, tx.Currency),
			OldBalanceDest: currency.Format(tx.OldBalanceDest, tx.Currency),
			NewBalanceDest: currency.Format(tx.NewBalanceDest, tx.Currency),
		},
	}

	s.logger.Info("prediction served",
		zap.String(pkg.TraceId, traceID),
		zap.String("prediction", string(outcome)),
		zap.Float64("confidence", confidence),
	)
	return result, nil
}

// inferenceError logs the full cause server-side and returns the generic
// prediction failure the caller is allowed to see.
func (s *predictionService) inferenceError(traceID string, err error) error {
	observability.PredictionFailures.WithLabelValues("inference").Inc()
	s.logger.Error("classifier invocation failed", zap.String(pkg.TraceId, traceID), zap.Error(err))
	return pkg.NewAppError(pkg.ErrPredictionCode, pkg.ErrPredictionCode.Message, err)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
