package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/portfolio-ai/chatbot-api/internal/model"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the shared error envelope. detail may be empty, in which
// case it is omitted from the body.
func writeError(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, model.ErrorResponse{
		Error:     message,
		Detail:    detail,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// clientIP extracts the client address used as the rate-limit key. The
// RealIP middleware has already rewritten RemoteAddr when the request came
// through a trusted proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
