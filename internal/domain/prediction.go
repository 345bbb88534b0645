package domain

// Prediction is the classification outcome for one request: the selected
// label, its index in the label set and the full probability distribution.
// Created fresh per request and discarded after the response.
type Prediction struct {
	Label         string
	Index         int
	Probabilities []float64
}
