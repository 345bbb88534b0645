// Package extract turns free-text symptom reports into fixed-length feature
// vectors aligned to the model's schema.
package extract

import (
	"strings"

	"github.com/medibell/triage/internal/domain"
)

// Extractor derives a feature vector from a message. Pure and stateless:
// schema and lexicon are immutable, so one Extractor serves arbitrarily many
// concurrent requests.
type Extractor struct {
	schema  *domain.Schema
	lexicon domain.Lexicon
}

// New creates an Extractor over the given schema and severity lexicon.
func New(schema *domain.Schema, lexicon domain.Lexicon) *Extractor {
	return &Extractor{schema: schema, lexicon: lexicon}
}

// Extract encodes text into a feature vector. The vector always has schema
// length: vital slots carry their fixed defaults, and each symptom slot is
// set to the message-wide severity when its phrase occurs as a substring of
// the lower-cased text.
//
// Matching is substring-based, not tokenized. A phrase nested inside a more
// specific one ("cough" inside "dry cough") fires both slots; that is the
// contract the model artifacts were produced against, not a bug.
func (e *Extractor) Extract(text string) domain.FeatureVector {
	lowered := strings.ToLower(text)
	severity := e.lexicon.Match(lowered)

	v := e.schema.NewVector()
	for i := domain.VitalCount; i < e.schema.Len(); i++ {
		if strings.Contains(lowered, e.schema.Phrase(i)) {
			v[i] = float64(severity)
		}
	}
	return v
}

// Severity exposes the message-wide severity for a raw text. Used by callers
// that report matched intensity back to the user.
func (e *Extractor) Severity(text string) int {
	return e.lexicon.Match(strings.ToLower(text))
}
