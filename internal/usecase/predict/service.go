// Package predict orchestrates the inference pipeline: extract, scale,
// score, normalize, select. Every stage is pure; the service holds only
// immutable configuration and serves concurrent requests without locking.
package predict

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/medibell/triage/internal/domain"
	"github.com/medibell/triage/internal/logger"
	"github.com/medibell/triage/internal/metrics"
)

// Service runs classifications over a fixed scaler, label set and backend.
type Service struct {
	extractor Extractor
	scaler    domain.Scaler
	labels    domain.LabelSet
	backend   Backend
}

// New creates a Service.
func New(extractor Extractor, scaler domain.Scaler, labels domain.LabelSet, backend Backend) *Service {
	return &Service{
		extractor: extractor,
		scaler:    scaler,
		labels:    labels,
		backend:   backend,
	}
}

// Labels returns the ordered label names.
func (s *Service) Labels() []string { return s.labels.Labels() }

// ClassifyVector is the canonical entry point: a raw (unscaled) feature
// vector, as produced by the extractor or supplied directly by a caller that
// already encoded the report. The vector length must match the scaler.
func (s *Service) ClassifyVector(ctx context.Context, raw domain.FeatureVector) (domain.Prediction, error) {
	start := time.Now()

	pred, err := s.classify(raw)
	s.observe(ctx, start, pred, err)
	return pred, err
}

// ClassifyText runs free text through feature extraction first, then the
// vector path. Blank text is rejected before it reaches the pipeline.
func (s *Service) ClassifyText(ctx context.Context, text string) (domain.Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Prediction{}, domain.ErrBadInput
	}

	start := time.Now()

	raw := s.extractor.Extract(text)
	pred, err := s.classify(raw)
	s.observe(ctx, start, pred, err)
	return pred, err
}

func (s *Service) classify(raw domain.FeatureVector) (domain.Prediction, error) {
	scaled, err := s.scaler.Apply(raw)
	if err != nil {
		return domain.Prediction{}, err
	}

	logits, err := s.backend.Infer(scaled)
	if err != nil {
		return domain.Prediction{}, err
	}

	probs, err := domain.Softmax(logits)
	if err != nil {
		return domain.Prediction{}, err
	}

	label, index := s.labels.Select(probs)
	return domain.Prediction{Label: label, Index: index, Probabilities: probs}, nil
}

func (s *Service) observe(ctx context.Context, start time.Time, pred domain.Prediction, err error) {
	elapsed := time.Since(start)
	if err != nil {
		metrics.PipelineErrorsTotal.WithLabelValues(s.backend.Name(), metrics.ErrorKind(err)).Inc()
		logger.FromContext(ctx).Warn("classification failed",
			zap.String("backend", s.backend.Name()),
			zap.Error(err),
		)
		return
	}

	metrics.PredictionsTotal.WithLabelValues(s.backend.Name(), pred.Label).Inc()
	metrics.PredictionDuration.WithLabelValues(s.backend.Name()).Observe(elapsed.Seconds())
	logger.FromContext(ctx).Debug("classification done",
		zap.String("backend", s.backend.Name()),
		zap.String("prediction", pred.Label),
		zap.Duration("latency", elapsed),
	)
}
