package domain

import "strconv"

// LabelSet is the ordered list of classification outcomes. Index position is
// the label's identity: the score backend emits one logit per position.
// Immutable after construction.
type LabelSet struct {
	labels []string
}

// NewLabelSet creates a LabelSet preserving order.
func NewLabelSet(labels []string) (LabelSet, error) {
	if len(labels) == 0 {
		return LabelSet{}, NewShapeMismatch("label set", 1, 0)
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return LabelSet{labels: out}, nil
}

// Len returns the number of labels.
func (ls LabelSet) Len() int { return len(ls.labels) }

// Labels returns a copy of the ordered label names.
func (ls LabelSet) Labels() []string {
	out := make([]string, len(ls.labels))
	copy(out, ls.labels)
	return out
}

// Select returns the first index achieving the maximum probability (stable
// left-to-right tie-break) and its label name. An index outside the label
// bounds maps to the stringified raw index rather than failing, so a backend
// emitting more positions than labels still yields an answer.
func (ls LabelSet) Select(probs []float64) (label string, index int) {
	if len(probs) == 0 {
		return "", -1
	}
	index = 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[index] {
			index = i
		}
	}
	if index < len(ls.labels) {
		return ls.labels[index], index
	}
	return strconv.Itoa(index), index
}
