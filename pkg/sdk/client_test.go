package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Predict(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/predict" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		var body struct {
			Symptoms []float64 `json:"symptoms"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body.Symptoms) != 3 {
			t.Errorf("symptoms length = %d, want 3", len(body.Symptoms))
		}

		_ = json.NewEncoder(w).Encode(Prediction{
			Prediction:      "influenza",
			PredictionIndex: 0,
			Probabilities:   []float64{0.5, 0.3, 0.2},
		})
	}))
	defer srv.Close()

	client, err := New(srv.URL, WithAPIKey("secret"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pred, err := client.Predict(context.Background(), []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred.Prediction != "influenza" || pred.PredictionIndex != 0 {
		t.Errorf("prediction = (%q, %d), want (influenza, 0)", pred.Prediction, pred.PredictionIndex)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("authorization header = %q, want Bearer secret", gotAuth)
	}
}

func TestClient_PredictText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/predict/text" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(Prediction{Prediction: "asthma", PredictionIndex: 3})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pred, err := client.PredictText(context.Background(), "wheezing and dry cough")
	if err != nil {
		t.Fatalf("PredictText: %v", err)
	}
	if pred.Prediction != "asthma" {
		t.Errorf("prediction = %q, want asthma", pred.Prediction)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "shape_mismatch", "message": "scaler expects 46 values, got 3"}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.Predict(context.Background(), []float64{1, 2, 3})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != "shape_mismatch" {
		t.Errorf("code = %q, want shape_mismatch", apiErr.Code)
	}
	if !apiErr.IsClientError() {
		t.Error("400 must be a client error")
	}
}

func TestClient_Schema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/schema" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(Schema{
			FeatureNames: []string{"age", "gender"},
			Labels:       []string{"influenza"},
		})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	schema, err := client.Schema(context.Background())
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if len(schema.FeatureNames) != 2 || len(schema.Labels) != 1 {
		t.Errorf("unexpected schema: %+v", schema)
	}
}

func TestClient_Health_Degraded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(Health{
			Status: "degraded",
			Checks: map[string]string{"backend": "error"},
		})
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	health, err := client.Health(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if health.Status != "degraded" {
		t.Errorf("status = %q, want degraded", health.Status)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
