package domain

import "math"

// Softmax converts logits to a probability distribution using the
// numerically stable form: shift by the maximum logit before exponentiating.
// For any finite logits the result is non-negative and sums to 1; all-equal
// logits yield the uniform distribution. Non-finite logits fail rather than
// being clamped.
func Softmax(logits []float64) ([]float64, error) {
	if len(logits) == 0 {
		return nil, NewShapeMismatch("softmax", 1, 0)
	}

	maxLogit := logits[0]
	for i, l := range logits {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, NewNotFinite("softmax", i)
		}
		if l > maxLogit {
			maxLogit = l
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}
