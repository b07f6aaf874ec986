// Package service orchestrates the chat request pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portfolio-ai/chatbot-api/internal/llm"
	"github.com/portfolio-ai/chatbot-api/internal/model"
	"github.com/portfolio-ai/chatbot-api/internal/ratelimit"
	"github.com/portfolio-ai/chatbot-api/pkg/logger"
	"github.com/portfolio-ai/chatbot-api/pkg/metrics"
)

// Options carries the generation parameters for upstream calls.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// ChatService coordinates rate limiting, context assembly and the upstream
// completion call for each chat request.
type ChatService struct {
	limiter   *ratelimit.Limiter
	assembler *ContextAssembler
	llmClient llm.Client
	opts      Options
	logger    *logger.Logger
}

// NewChatService creates a new chat service.
func NewChatService(
	limiter *ratelimit.Limiter,
	assembler *ContextAssembler,
	llmClient llm.Client,
	opts Options,
	log *logger.Logger,
) *ChatService {
	return &ChatService{
		limiter:   limiter,
		assembler: assembler,
		llmClient: llmClient,
		opts:      opts,
		logger:    log,
	}
}

// Handle processes one chat request from the given client. It fails with
// ErrRateLimited when the client exceeded its window and ErrCompletionFailed
// when the upstream call fails; validation errors pass through unchanged.
func (s *ChatService) Handle(ctx context.Context, req *model.ChatRequest, clientID string) (*model.ChatResponse, error) {
	if !s.limiter.Allow(clientID) {
		metrics.RateLimitRejectionsTotal.Inc()
		s.logger.Warn("rate limit exceeded",
			zap.String("client_id", clientID),
		)
		return nil, ErrRateLimited
	}
	metrics.RateLimitClients.Set(float64(s.limiter.Size()))

	messages, err := s.assembler.Build(req.History, req.Message)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.llmClient.Complete(ctx, &llm.CompletionRequest{
		Model:       s.opts.Model,
		Messages:    messages,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		kind := llm.KindUnexpected
		var llmErr *llm.Error
		if errors.As(err, &llmErr) {
			kind = llmErr.Kind
		}
		metrics.RecordCompletion(s.opts.Model, string(kind), time.Since(start).Seconds(), 0, 0)
		s.logger.Error("completion failed",
			zap.String("client_id", clientID),
			zap.String("provider", s.llmClient.Name()),
			zap.String("model", s.opts.Model),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	metrics.RecordCompletion(s.opts.Model, "success", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	s.logger.Info("generated response",
		zap.String("conversation_id", conversationID),
		zap.String("provider", s.llmClient.Name()),
		zap.String("model", s.opts.Model),
		zap.Int64("latency_ms", resp.LatencyMs),
		zap.Int("tokens_in", resp.TokensIn),
		zap.Int("tokens_out", resp.TokensOut),
	)

	return &model.ChatResponse{
		Response:       strings.TrimSpace(resp.Content),
		ConversationID: conversationID,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		ModelUsed:      s.opts.Model,
	}, nil
}
