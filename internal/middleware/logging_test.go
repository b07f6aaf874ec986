package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfolio-ai/chatbot-api/pkg/logger"
)

func TestLogging_CorrelationID(t *testing.T) {
	t.Parallel()

	log := &logger.Logger{Logger: zap.NewNop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	Logging(log)(next).ServeHTTP(rec, req)

	require.NotEmpty(t, seen, "a correlation id is generated when absent")
	assert.Equal(t, seen, rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogging_PropagatesIncomingCorrelationID(t *testing.T) {
	t.Parallel()

	log := &logger.Logger{Logger: zap.NewNop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "corr-42")
	Logging(log)(next).ServeHTTP(rec, req)

	assert.Equal(t, "corr-42", rec.Header().Get("X-Correlation-ID"))
}
