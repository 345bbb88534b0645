// Package sdk provides a Go client for the triage symptom classification
// service.
//
//	client, _ := sdk.New("http://localhost:8080", sdk.WithAPIKey("secret"))
//	pred, _ := client.PredictText(ctx, "I have a severe headache and mild cough")
//	fmt.Println(pred.Prediction, pred.Probabilities)
//
// Callers that already encode reports into the 46-slot feature layout can
// skip extraction and post the raw vector:
//
//	pred, _ := client.Predict(ctx, vector)
package sdk
