// Package model holds the pluggable score backends. A backend maps a scaled
// feature vector to one logit per label. Backends are registered explicitly
// and selected by name through configuration — never loaded as code at
// runtime.
package model

import (
	"fmt"
	"sort"
	"sync"

	"github.com/medibell/triage/internal/domain"
)

// Backend scores a scaled feature vector into per-label logits.
// Implementations must be deterministic and safe for concurrent use.
type Backend interface {
	// Name identifies the backend in configuration and metrics.
	Name() string
	// Infer returns one logit per label. len(result) == label count.
	Infer(scaled domain.FeatureVector) ([]float64, error)
}

// Factory builds a backend for the given feature and label counts.
type Factory func(featureCount, labelCount int) (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a backend factory available under name. Call from package
// init or the composition root; duplicate names panic.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("model: backend %q registered twice", name))
	}
	registry[name] = f
}

// Open builds the backend registered under name.
func Open(name string, featureCount, labelCount int) (Backend, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", domain.ErrUnknownBackend, name, Names())
	}
	return f(featureCount, labelCount)
}

// Names lists registered backend names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
