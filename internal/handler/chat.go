// Package handler provides HTTP handlers for the chatbot API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/portfolio-ai/chatbot-api/internal/model"
	"github.com/portfolio-ai/chatbot-api/internal/service"
	"github.com/portfolio-ai/chatbot-api/pkg/logger"
)

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	chatService *service.ChatService
	logger      *logger.Logger
	debug       bool
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatSvc *service.ChatService, log *logger.Logger, debug bool) *ChatHandler {
	return &ChatHandler{
		chatService: chatSvc,
		logger:      log,
		debug:       debug,
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("malformed chat request",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		writeError(w, http.StatusUnprocessableEntity, "Validation Error", h.detail(err))
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("invalid chat request",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		writeError(w, http.StatusUnprocessableEntity, "Validation Error", err.Error())
		return
	}

	resp, err := h.chatService.Handle(r.Context(), &req, clientIP(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError

	switch {
	case errors.Is(err, service.ErrRateLimited):
		w.Header().Set("Retry-After", "60")
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", "")

	case errors.As(err, &validationErr):
		writeError(w, http.StatusUnprocessableEntity, "Validation Error", err.Error())

	case errors.Is(err, service.ErrCompletionFailed):
		writeError(w, http.StatusInternalServerError, "Failed to generate response", h.detail(err))

	default:
		h.logger.Error("unhandled chat error",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "Internal Server Error", h.detail(err))
	}
}

// detail exposes underlying error text only in debug mode.
func (h *ChatHandler) detail(err error) string {
	if h.debug {
		return err.Error()
	}
	return ""
}
