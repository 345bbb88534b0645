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
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/medibell/triage/internal/artifact"
	"github.com/medibell/triage/internal/config"
	"github.com/medibell/triage/internal/domain"
	"github.com/medibell/triage/internal/extract"
	logpkg "github.com/medibell/triage/internal/logger"
	"github.com/medibell/triage/internal/metrics"
	"github.com/medibell/triage/internal/model"
	chiTransport "github.com/medibell/triage/internal/transport/chi"
	healthuc "github.com/medibell/triage/internal/usecase/health"
	predictuc "github.com/medibell/triage/internal/usecase/predict"
	"github.com/medibell/triage/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting triage API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("model_backend", cfg.Model.Backend),
	)

	// Load immutable artifacts once; everything downstream shares them
	// read-only. A broken artifact is fatal here rather than a per-request
	// surprise later.
	schema := domain.DefaultSchema()
	bundle, err := artifact.Load(schema, cfg.Artifacts.ScalerPath, cfg.Artifacts.LabelsPath)
	if err != nil {
		logger.Fatal("Failed to load artifacts", zap.Error(err))
	}
	logger.Info("Artifacts loaded",
		zap.String("scaler", cfg.Artifacts.ScalerPath),
		zap.String("labels", cfg.Artifacts.LabelsPath),
		zap.Int("features", schema.Len()),
		zap.Int("labels_count", bundle.Labels.Len()),
	)

	// Score backend — selected by name from the registry, never loaded as
	// code at runtime.
	backend, err := model.Open(cfg.Model.Backend, schema.Len(), bundle.Labels.Len())
	if err != nil {
		logger.Fatal("Failed to open score backend", zap.Error(err))
	}
	logger.Info("Score backend ready", zap.String("backend", backend.Name()))

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPredictionMetrics()

	// Build the pipeline services
	extractor := extract.New(schema, domain.DefaultLexicon())
	predictSvc := predictuc.New(extractor, bundle.Scaler, bundle.Labels, backend)
	healthSvc := healthuc.New(bundle, backend, schema.Len())

	// Create chi server
	server := chiTransport.NewServer(predictSvc, healthSvc, schema, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
