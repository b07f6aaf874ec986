package service

import (
	"unicode/utf8"

	"github.com/portfolio-ai/chatbot-api/internal/llm"
	"github.com/portfolio-ai/chatbot-api/internal/model"
)

// maxHistoryMessages bounds how much prior conversation is sent upstream,
// keeping payload size and token cost in check.
const maxHistoryMessages = 10

// ContextAssembler builds the ordered message sequence submitted to the
// upstream provider: persona prompt, bounded history, then the new message.
type ContextAssembler struct {
	persona    string
	maxHistory int
}

// NewContextAssembler creates an assembler with the given persona prompt.
func NewContextAssembler(persona string) *ContextAssembler {
	return &ContextAssembler{
		persona:    persona,
		maxHistory: maxHistoryMessages,
	}
}

// Build produces the upstream message sequence. The persona system entry
// comes first, followed by at most the last maxHistory history entries in
// their original order, followed by the new user message. Inputs are never
// mutated.
func (a *ContextAssembler) Build(history []model.ChatMessage, message string) ([]llm.ChatMessage, error) {
	if message == "" {
		return nil, &model.ValidationError{Field: "message", Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(message) > model.MaxMessageLength {
		return nil, &model.ValidationError{Field: "message", Reason: "exceeds maximum length"}
	}

	recent := history
	if len(recent) > a.maxHistory {
		recent = recent[len(recent)-a.maxHistory:]
	}

	messages := make([]llm.ChatMessage, 0, len(recent)+2)
	messages = append(messages, llm.ChatMessage{
		Role:    string(model.RoleSystem),
		Content: a.persona,
	})
	for _, msg := range recent {
		messages = append(messages, llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	messages = append(messages, llm.ChatMessage{
		Role:    string(model.RoleUser),
		Content: message,
	})

	return messages, nil
}
