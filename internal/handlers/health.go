package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheckFunc reports whether a dependency is reachable.
type HealthCheckFunc func(ctx context.Context) error

// HealthHandlers serves the health endpoint.
type HealthHandlers struct {
	checks map[string]HealthCheckFunc
}

// NewHealthHandlers creates health handlers running checks, keyed by service name.
func NewHealthHandlers(checks map[string]HealthCheckFunc) *HealthHandlers {
	return &HealthHandlers{checks: checks}
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a conectividade com MongoDB e Redis.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()
	span.SetAttributes(attribute.String("operation", "health_check"))

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string, len(h.checks)),
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		checkCtx, checkSpan := utils.TraceExternalService(checkCtx, name, "ping")
		err := h.checks[name](checkCtx)
		cancel()
		if err != nil {
			utils.RecordErrorInSpan(checkSpan, err, nil)
			health.Status = "unhealthy"
			health.Services[name] = "unhealthy"
			observability.Logger().Error("health check failed", zap.String("service", name), zap.Error(err))
		} else {
			health.Services[name] = "healthy"
		}
		checkSpan.End()
	}

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
