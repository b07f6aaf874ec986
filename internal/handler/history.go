package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/portfolio-ai/chatbot-api/internal/model"
)

// HistoryHandler handles the conversation history endpoint.
//
// Persistent history is not implemented; the endpoint acknowledges the
// conversation id so clients can already integrate against the route.
type HistoryHandler struct{}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler() *HistoryHandler {
	return &HistoryHandler{}
}

// Get handles GET /api/chat/history/{conversationID}
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HistoryAck{
		Message:        "Chat history feature coming soon",
		ConversationID: chi.URLParam(r, "conversationID"),
	})
}
