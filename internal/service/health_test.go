package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_UpstreamAvailable(t *testing.T) {
	t.Parallel()

	checker := NewHealthChecker(&stubLLM{probe: true}, "1.0.0")
	report := checker.Check(context.Background())

	assert.Equal(t, "healthy", report.Status)
	assert.True(t, report.UpstreamAvailable)
	assert.Equal(t, "1.0.0", report.Version)
	assert.True(t, strings.HasSuffix(report.Timestamp, "Z"))
	_, err := time.Parse(time.RFC3339, report.Timestamp)
	require.NoError(t, err)
}

func TestCheck_UpstreamDown_ServiceStaysHealthy(t *testing.T) {
	t.Parallel()

	checker := NewHealthChecker(&stubLLM{probe: false}, "1.0.0")
	report := checker.Check(context.Background())

	// An unreachable provider is a dependency signal, not a service one.
	assert.Equal(t, "healthy", report.Status)
	assert.False(t, report.UpstreamAvailable)
}
