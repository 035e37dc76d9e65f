// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/daybreak-labs/companion-api/internal/config"
	"github.com/daybreak-labs/companion-api/internal/events"
	"github.com/daybreak-labs/companion-api/internal/handler"
	"github.com/daybreak-labs/companion-api/internal/llm"
	"github.com/daybreak-labs/companion-api/internal/middleware"
	"github.com/daybreak-labs/companion-api/internal/service"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
	"github.com/daybreak-labs/companion-api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "companion-api", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Optional NATS activity fan-out
	var publisher events.Publisher = events.Noop{}
	var natsPublisher *events.NATSPublisher
	if cfg.NATSURL != "" {
		natsPublisher, err = events.ConnectNATS(ctx, events.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	// Initialize provider client. A missing key disables generation but
	// never prevents startup.
	var llmClient llm.Client
	switch {
	case cfg.DefaultProvider == string(llm.ProviderAnthropic) && cfg.AnthropicAPIKey != "":
		llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	case cfg.OpenAIAPIKey != "":
		llmClient, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	case cfg.AnthropicAPIKey != "":
		llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	if err != nil {
		log.Warn("failed to create provider client, generation disabled", zap.Error(err))
		llmClient = nil
	}
	if llmClient == nil {
		log.Warn("no provider API key configured, generation calls will fail")
	}
	gateway := llm.NewGateway(llmClient, cfg.Model, log)

	// Initialize store and services
	st := store.NewMemory()
	activitySvc := service.NewActivityService(st, publisher, log)
	conversationSvc := service.NewConversationService(st, log)
	chatSvc := service.NewChatService(st, gateway, activitySvc, log)
	goalSvc := service.NewGoalService(st, activitySvc, log)
	noteSvc := service.NewNoteService(st, activitySvc, log)
	summarySvc := service.NewSummaryService(st, gateway, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsPublisher)
	conversationHandler := handler.NewConversationHandler(conversationSvc, log)
	chatHandler := handler.NewChatHandler(chatSvc, log)
	goalHandler := handler.NewGoalHandler(goalSvc, log)
	noteHandler := handler.NewNoteHandler(noteSvc, log)
	activityHandler := handler.NewActivityHandler(activitySvc, log)
	summaryHandler := handler.NewSummaryHandler(summarySvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Post("/chat", chatHandler.Send)

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", conversationHandler.List)
			r.Post("/", conversationHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", conversationHandler.Get)
				r.Patch("/", conversationHandler.Update)
				r.Delete("/", conversationHandler.Delete)

				r.Get("/messages", conversationHandler.ListMessages)
			})
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", goalHandler.List)
			r.Post("/", goalHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", goalHandler.Get)
				r.Patch("/", goalHandler.Update)
				r.Delete("/", goalHandler.Delete)
			})
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", noteHandler.List)
			r.Post("/", noteHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", noteHandler.Get)
				r.Patch("/", noteHandler.Update)
				r.Delete("/", noteHandler.Delete)
			})
		})

		r.Get("/activities", activityHandler.List)
		r.Post("/activities", activityHandler.Create)

		r.Get("/summary/daily", summaryHandler.Daily)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
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
