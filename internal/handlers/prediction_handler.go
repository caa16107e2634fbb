package handlers

import (
	"net/http"

	"github.com/fraudlens/prediction-api/internal/services"
	"github.com/fraudlens/prediction-api/pkg"
	"github.com/fraudlens/prediction-api/pkg/utils"
	"github.com/fraudlens/prediction-api/pkg/views"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PredictionHandler struct {
	logger  *zap.Logger
	service services.PredictionService
	stats   views.ModelStats
}

func NewPredictionHandler(logger *zap.Logger, svc services.PredictionService, stats views.ModelStats) *PredictionHandler {
	return &PredictionHandler{logger: logger, service: svc, stats: stats}
}

// RegisterRoutes registers prediction routes on the provided Gin group.
func (h *PredictionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
	r.GET("/stats", h.GetStats)
}

// Predict handles the core prediction operation. The payload is bound to a
// raw map so the assembler owns presence and coercion semantics.
func (h *PredictionHandler) Predict(c *gin.Context) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
			Code:  pkg.ErrServerCode.Code,
			Error: pkg.ErrServerCode.Message,
		})
		return
	}

	var payload map[string]any
	if err = c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.ErrorResponse{
			Code:  pkg.ErrInvalidInputCode.Code,
			Error: "request body must be a JSON object",
		})
		return
	}

	result, err := h.service.Predict(c.Request.Context(), traceID, payload)
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStats reports training metadata of the loaded model.
func (h *PredictionHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats)
}
