package handlers

import (
	"net/http"
	"time"

	"github.com/fraudlens/prediction-api/pkg"
	"github.com/fraudlens/prediction-api/pkg/views"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger        *zap.Logger
	modelLoaded   bool
	encoderLoaded bool
}

func NewBaseHandler(logger *zap.Logger, modelLoaded, encoderLoaded bool) *BaseHandler {
	return &BaseHandler{logger: logger, modelLoaded: modelLoaded, encoderLoaded: encoderLoaded}
}

func (b *BaseHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", b.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetHealth is a pure state query: it reports whether the fitted artifacts
// are loaded and has no side effects.
func (b *BaseHandler) GetHealth(c *gin.Context) {
	status := "healthy"
	if !b.modelLoaded || !b.encoderLoaded {
		status = "unhealthy"
	}
	c.JSON(http.StatusOK, views.HealthStatus{
		Status:        status,
		ModelLoaded:   b.modelLoaded,
		EncoderLoaded: b.encoderLoaded,
		Timestamp:     time.Now().Format(pkg.TimestampLayout),
	})
}
