package sdk

// Prediction is a classification result.
type Prediction struct {
	Prediction      string    `json:"prediction"`
	PredictionIndex int       `json:"prediction_index"`
	Probabilities   []float64 `json:"probabilities"`
}

// Schema describes the service's input layout and label set.
type Schema struct {
	FeatureNames []string `json:"feature_names"`
	Labels       []string `json:"labels"`
}

// Health is the aggregated service health report.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
