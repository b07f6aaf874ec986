package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfolio-ai/chatbot-api/internal/llm"
	"github.com/portfolio-ai/chatbot-api/internal/model"
	"github.com/portfolio-ai/chatbot-api/internal/ratelimit"
	"github.com/portfolio-ai/chatbot-api/pkg/logger"
)

// stubLLM is a scripted llm.Client for service tests.
type stubLLM struct {
	content string
	err     error
	probe   bool
	calls   int
	lastReq *llm.CompletionRequest
}

func (s *stubLLM) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{
		Content: s.content,
		Model:   req.Model,
	}, nil
}

func (s *stubLLM) Probe(ctx context.Context) bool { return s.probe }
func (s *stubLLM) Name() string                   { return "stub" }
func (s *stubLLM) Models() []string               { return []string{"stub-model"} }

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func newTestChatService(stub *stubLLM, maxRequests int) *ChatService {
	return NewChatService(
		ratelimit.New(maxRequests, time.Minute),
		NewContextAssembler("persona"),
		stub,
		Options{Model: "gpt-4", MaxTokens: 500, Temperature: 0.7},
		testLogger(),
	)
}

func TestHandle_GeneratesConversationID(t *testing.T) {
	t.Parallel()

	svc := newTestChatService(&stubLLM{content: "Hi there!"}, 100)

	first, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello"}, "10.0.0.1")
	require.NoError(t, err)
	second, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello"}, "10.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ConversationID)
	assert.NotEmpty(t, second.ConversationID)
	assert.NotEqual(t, first.ConversationID, second.ConversationID)
}

func TestHandle_PreservesConversationID(t *testing.T) {
	t.Parallel()

	svc := newTestChatService(&stubLLM{content: "ok"}, 100)

	resp, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello", ConversationID: "abc"}, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.ConversationID)
}

func TestHandle_ResponseEnvelope(t *testing.T) {
	t.Parallel()

	svc := newTestChatService(&stubLLM{content: "  Hi there!  "}, 100)

	resp, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello"}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "Hi there!", resp.Response, "whitespace must be trimmed")
	assert.Equal(t, "gpt-4", resp.ModelUsed)
	assert.True(t, strings.HasSuffix(resp.Timestamp, "Z"), "timestamp must be UTC with trailing Z")
	_, err = time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestHandle_PassesGenerationParameters(t *testing.T) {
	t.Parallel()

	stub := &stubLLM{content: "ok"}
	svc := newTestChatService(stub, 100)

	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "Hi there!"},
		{Role: model.RoleAssistant, Content: "Hello! How can I help?"},
	}
	_, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello", History: history}, "10.0.0.1")
	require.NoError(t, err)

	require.NotNil(t, stub.lastReq)
	assert.Equal(t, "gpt-4", stub.lastReq.Model)
	assert.Equal(t, 500, stub.lastReq.MaxTokens)
	assert.InDelta(t, 0.7, stub.lastReq.Temperature, 1e-9)
	require.Len(t, stub.lastReq.Messages, 4)
	assert.Equal(t, "system", stub.lastReq.Messages[0].Role)
	assert.Equal(t, "Hello", stub.lastReq.Messages[3].Content)
}

func TestHandle_CompletionFailure(t *testing.T) {
	t.Parallel()

	stub := &stubLLM{err: &llm.Error{Kind: llm.KindUpstream, Message: "rate limited upstream"}}
	svc := newTestChatService(stub, 100)

	resp, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello"}, "10.0.0.1")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrCompletionFailed))
}

func TestHandle_RateLimited(t *testing.T) {
	t.Parallel()

	stub := &stubLLM{content: "ok"}
	svc := newTestChatService(stub, 2)

	for i := 0; i < 2; i++ {
		_, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello"}, "10.0.0.1")
		require.NoError(t, err)
	}

	resp, err := svc.Handle(context.Background(), &model.ChatRequest{Message: "Hello"}, "10.0.0.1")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.Equal(t, 2, stub.calls, "no upstream call is made for rejected requests")
}

func TestHandle_ValidationPassthrough(t *testing.T) {
	t.Parallel()

	svc := newTestChatService(&stubLLM{content: "ok"}, 100)

	_, err := svc.Handle(context.Background(), &model.ChatRequest{Message: ""}, "10.0.0.1")
	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
}
