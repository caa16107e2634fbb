package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fraudlens/prediction-api/configs"
	"github.com/fraudlens/prediction-api/internal/assembler"
	"github.com/fraudlens/prediction-api/internal/classifier"
	"github.com/fraudlens/prediction-api/internal/encoder"
	"github.com/fraudlens/prediction-api/internal/handlers"
	"github.com/fraudlens/prediction-api/internal/services"
	middleware "github.com/fraudlens/prediction-api/pkg/middlewares"
	"github.com/fraudlens/prediction-api/pkg/views"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewApp wires dependencies, builds the Gin engine, and returns an *http.Server and a cleanup func.
// Artifact loading happens here, before any request is accepted: a process
// that cannot classify must not serve.
func NewApp(ctx context.Context, logger *zap.Logger) (*http.Server, func(), error) {
	// Load config
	cfg, err := configs.Load(logger)
	if err != nil {
		return nil, nil, err
	}

	enc, err := encoder.Load(cfg.EncoderPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load encoder: %w", err)
	}
	logger.Info("encoder loaded",
		zap.String("path", cfg.EncoderPath),
		zap.Strings("classes", enc.Classes()),
	)

	model, err := classifier.LoadForest(cfg.ModelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load model: %w", err)
	}
	logger.Info("model loaded",
		zap.String("path", cfg.ModelPath),
		zap.String("algorithm", model.Meta.Algorithm),
		zap.Int("trees", len(model.Trees)),
	)

	// Setup dependencies
	asm := assembler.New(enc)
	svc := services.NewPredictionService(services.PredictionServiceConfig{
		Logger:    logger,
		Assembler: asm,
		Model:     model,
	})

	stats := views.ModelStats{
		ModelType:        model.Meta.Algorithm,
		Features:         model.Meta.Features,
		TransactionTypes: enc.Classes(),
		Metrics:          model.Meta.Metrics,
		TrainingDate:     model.Meta.TrainingDate,
		DatasetSize:      model.Meta.DatasetSize,
		ModelStatus:      "ready",
	}
	predictionHandler := handlers.NewPredictionHandler(logger, svc, stats)
	baseHandler := handlers.NewBaseHandler(logger, true, true)

	// Router
	r := gin.Default()

	api := r.Group("/api/v1")
	api.Use(middleware.TraceID())
	api.Use(middleware.Metrics())

	predictionHandler.RegisterRoutes(api)
	baseHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	cleanup := func() {}

	return srv, cleanup, nil
}
