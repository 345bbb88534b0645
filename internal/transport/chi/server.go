// Package chi exposes the triage API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/medibell/triage/internal/domain"
	healthuc "github.com/medibell/triage/internal/usecase/health"
	predictuc "github.com/medibell/triage/internal/usecase/predict"
)

// Machine-readable error codes returned in the JSON error body.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeShapeMismatch    = "shape_mismatch"
	CodeComputationError = "computation_error"
	CodeArtifactError    = "artifact_error"
	CodeInternalError    = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PredictRequest carries a raw (unscaled) feature vector. RawMessage defers
// decoding so that a non-array payload maps to a clean 400 instead of a
// generic unmarshal error.
type PredictRequest struct {
	Symptoms json.RawMessage `json:"symptoms"`
}

// PredictTextRequest carries a free-text symptom report.
type PredictTextRequest struct {
	Text string `json:"text"`
}

// PredictResponse is the classification result.
type PredictResponse struct {
	Prediction      string    `json:"prediction"`
	PredictionIndex int       `json:"prediction_index"`
	Probabilities   []float64 `json:"probabilities"`
}

// SchemaResponse describes the model's input layout and label set.
type SchemaResponse struct {
	FeatureNames []string `json:"feature_names"`
	Labels       []string `json:"labels"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the use case services into HTTP handlers.
type Server struct {
	predict       *predictuc.Service
	health        *healthuc.Service
	schema        *domain.Schema
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	predict *predictuc.Service,
	health *healthuc.Service,
	schema *domain.Schema,
	logger *zap.Logger,
) *Server {
	s := &Server{
		predict: predict,
		health:  health,
		schema:  schema,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrShapeMismatch, http.StatusBadRequest, CodeShapeMismatch),
		sentinelHandler(domain.ErrBadInput, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotFinite, http.StatusInternalServerError, CodeComputationError),
		sentinelHandler(domain.ErrArtifact, http.StatusInternalServerError, CodeArtifactError),
		sentinelHandler(domain.ErrUnknownBackend, http.StatusInternalServerError, CodeInternalError),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/v1/predict", s.PredictVector)
	r.Post("/v1/predict/text", s.PredictText)
	r.Get("/v1/schema", s.GetSchema)
	r.Get("/health", s.GetHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// PredictVector handles POST /v1/predict. Canonical entry contract: the body
// carries a raw feature vector already aligned to the schema.
func (s *Server) PredictVector(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Symptoms) == 0 {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "symptoms is required")
		return
	}

	var vector []float64
	if err := json.Unmarshal(req.Symptoms, &vector); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "symptoms must be an array of numbers")
		return
	}

	pred, err := s.predict.ClassifyVector(r.Context(), vector)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, predictionToResponse(pred))
}

// PredictText handles POST /v1/predict/text: free text is run through
// feature extraction before the vector path.
func (s *Server) PredictText(w http.ResponseWriter, r *http.Request) {
	var req PredictTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "text is required")
		return
	}

	pred, err := s.predict.ClassifyText(r.Context(), req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, predictionToResponse(pred))
}

// GetSchema handles GET /v1/schema.
func (s *Server) GetSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SchemaResponse{
		FeatureNames: s.schema.Names(),
		Labels:       s.predict.Labels(),
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func predictionToResponse(p domain.Prediction) PredictResponse {
	return PredictResponse{
		Prediction:      p.Label,
		PredictionIndex: p.Index,
		Probabilities:   p.Probabilities,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrShapeMismatch,
		domain.ErrBadInput,
		domain.ErrNotFinite,
		domain.ErrArtifact,
		domain.ErrUnknownBackend,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			// Wrapper types carry the offending shape or index; pass that
			// detail through so callers can tell their mistake from ours.
			return err.Error()
		}
	}
	return "internal error"
}

// sentinelHandler creates a handler for a sentinel error with fixed status and code.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
