// Package health aggregates component health checks for the readiness
// endpoint.
package health

import (
	"context"

	"github.com/medibell/triage/internal/domain"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	artifacts    ArtifactVerifier
	scorer       Scorer
	featureCount int
}

// New creates a Service.
func New(artifacts ArtifactVerifier, scorer Scorer, featureCount int) *Service {
	return &Service{artifacts: artifacts, scorer: scorer, featureCount: featureCount}
}

// Check runs health checks against all components. The backend probe scores
// a zero vector; any error marks the component failed.
func (s *Service) Check(_ context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.artifacts.Verify(); err != nil {
		checks["artifacts"] = CheckError
	} else {
		checks["artifacts"] = CheckOK
	}

	probe := make(domain.FeatureVector, s.featureCount)
	if _, err := s.scorer.Infer(probe); err != nil {
		checks["backend"] = CheckError
	} else {
		checks["backend"] = CheckOK
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
