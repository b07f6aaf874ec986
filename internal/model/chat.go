// Package model defines data structures for the chatbot API.
package model

import (
	"fmt"
	"unicode/utf8"
)

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// MaxMessageLength is the maximum accepted user message length in characters.
const MaxMessageLength = 1000

// ValidationError describes a request that failed boundary validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// ChatMessage is a single entry in a conversation.
type ChatMessage struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message        string        `json:"message"`
	ConversationID string        `json:"conversation_id,omitempty"`
	History        []ChatMessage `json:"history,omitempty"`
}

// Validate checks the request against the API contract.
func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return &ValidationError{Field: "message", Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(r.Message) > MaxMessageLength {
		return &ValidationError{Field: "message", Reason: fmt.Sprintf("exceeds maximum length of %d characters", MaxMessageLength)}
	}
	if !utf8.ValidString(r.Message) {
		return &ValidationError{Field: "message", Reason: "must be valid UTF-8"}
	}
	for i, msg := range r.History {
		switch msg.Role {
		case RoleUser, RoleAssistant, RoleSystem:
		default:
			return &ValidationError{Field: fmt.Sprintf("history[%d].role", i), Reason: "must be one of: user, assistant, system"}
		}
		if msg.Content == "" {
			return &ValidationError{Field: fmt.Sprintf("history[%d].content", i), Reason: "cannot be empty"}
		}
	}
	return nil
}

// ChatResponse is the response body for a successful chat request.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
	Timestamp      string `json:"timestamp"`
	ModelUsed      string `json:"model_used"`
}

// HealthReport is the response body for GET /api/health.
type HealthReport struct {
	Status            string `json:"status"`
	Timestamp         string `json:"timestamp"`
	Version           string `json:"version"`
	UpstreamAvailable bool   `json:"upstream_available"`
}

// HistoryAck is the placeholder response for the chat history endpoint.
type HistoryAck struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

// ErrorResponse is the shared error envelope for all failure responses.
type ErrorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"`
}
