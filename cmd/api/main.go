// Package main is the entry point for the chatbot API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/portfolio-ai/chatbot-api/internal/config"
	"github.com/portfolio-ai/chatbot-api/internal/handler"
	"github.com/portfolio-ai/chatbot-api/internal/llm"
	"github.com/portfolio-ai/chatbot-api/internal/middleware"
	"github.com/portfolio-ai/chatbot-api/internal/ratelimit"
	"github.com/portfolio-ai/chatbot-api/internal/service"
	"github.com/portfolio-ai/chatbot-api/pkg/logger"
	"github.com/portfolio-ai/chatbot-api/pkg/tracing"
)

const indexFile = "public/index.html"

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting chatbot API server",
		zap.String("environment", cfg.Environment),
		zap.Bool("debug", cfg.Debug),
		zap.String("version", config.Version),
	)

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "chatbot-api", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Initialize LLM client
	apiKey := cfg.OpenAIAPIKey
	if cfg.Provider == string(llm.ProviderAnthropic) {
		apiKey = cfg.AnthropicAPIKey
	}
	llmClient, err := llm.NewClient(llm.Provider(cfg.Provider), apiKey)
	if err != nil {
		log.Error("failed to create LLM client", zap.Error(err))
		os.Exit(1)
	}

	// Initialize services
	limiter := ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitWindow)
	assembler := service.NewContextAssembler(service.PersonaPrompt)
	chatSvc := service.NewChatService(limiter, assembler, llmClient, service.Options{
		Model:       cfg.AIModel,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
	}, log)
	healthChecker := service.NewHealthChecker(llmClient, config.Version)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatSvc, log, cfg.Debug)
	healthHandler := handler.NewHealthHandler(healthChecker, log)
	historyHandler := handler.NewHistoryHandler()

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOriginsList()))

	// API routes
	r.Post("/api/chat", chatHandler.Chat)
	r.Get("/api/health", healthHandler.Health)
	r.Get("/api/chat/history/{conversationID}", historyHandler.Get)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Static index page
	r.Get("/", serveIndex)
	if _, err := os.Stat("static"); err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	}

	// Test upstream connectivity at boot
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	available := llmClient.Probe(probeCtx)
	cancel()
	log.Info("upstream connectivity check",
		zap.String("provider", llmClient.Name()),
		zap.Bool("available", available),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(indexFile); err == nil {
		http.ServeFile(w, r, indexFile)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Welcome to the chatbot API",
	})
}
