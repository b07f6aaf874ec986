package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/portfolio-ai/chatbot-api/internal/service"
	"github.com/portfolio-ai/chatbot-api/pkg/logger"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	checker *service.HealthChecker
	logger  *logger.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(checker *service.HealthChecker, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  log,
	}
}

// Health handles GET /api/health. A fault while computing the report maps to
// 503; an unreachable upstream does not (the probe already flattens that into
// upstream_available=false).
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("health check failed", zap.Any("panic", rec))
			writeError(w, http.StatusServiceUnavailable, "Service unhealthy", "")
		}
	}()

	report := h.checker.Check(r.Context())
	writeJSON(w, http.StatusOK, report)
}
