package service

import (
	"context"
	"time"

	"github.com/portfolio-ai/chatbot-api/internal/llm"
	"github.com/portfolio-ai/chatbot-api/internal/model"
	"github.com/portfolio-ai/chatbot-api/pkg/metrics"
)

// HealthChecker composes the upstream liveness probe into a service health
// report.
type HealthChecker struct {
	llmClient llm.Client
	version   string
}

// NewHealthChecker creates a new health checker.
func NewHealthChecker(llmClient llm.Client, version string) *HealthChecker {
	return &HealthChecker{
		llmClient: llmClient,
		version:   version,
	}
}

// Check builds the current health report. Status is "healthy" whenever the
// report itself can be computed: an unreachable upstream only flips
// upstream_available, it does not mark the service down. Liveness of this
// process and reachability of the provider are independent signals.
func (h *HealthChecker) Check(ctx context.Context) model.HealthReport {
	available := h.llmClient.Probe(ctx)
	metrics.SetUpstreamAvailable(available)

	return model.HealthReport{
		Status:            "healthy",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		Version:           h.version,
		UpstreamAvailable: available,
	}
}
