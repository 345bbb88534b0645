package domain

import "strings"

// VitalCount is the number of leading continuous vital slots in the schema.
const VitalCount = 6

// Fixed defaults for the vital slots. The scoring model was fitted against a
// dataset that carries these columns, so every request fills them with the
// same neutral profile regardless of the message text.
const (
	DefaultAge           = 25
	DefaultGender        = 1
	DefaultSmoker        = 0
	DefaultHeartRate     = 80
	DefaultBloodPressure = 120
	DefaultCholesterol   = 180
)

var vitalDefaults = [VitalCount]float64{
	DefaultAge,
	DefaultGender,
	DefaultSmoker,
	DefaultHeartRate,
	DefaultBloodPressure,
	DefaultCholesterol,
}

// defaultFeatureNames is the ordered feature layout the shipped artifacts were
// produced against: six vitals followed by forty symptom indicators. Position
// is part of the contract — reordering breaks compatibility with any trained
// model expecting this input layout.
var defaultFeatureNames = []string{
	"age", "gender", "smoker", "heart_rate", "blood_pressure", "cholesterol_level",

	"fever", "cough", "fatigue", "shortness_of_breath", "headache",
	"runny_nose", "sore_throat", "chest_pain", "body_ache",
	"nausea", "vomiting", "diarrhea", "dizziness", "chills",
	"loss_of_smell", "loss_of_taste", "wheezing", "rash",
	"eye_irritation", "ear_pain", "sweating", "joint_pain",
	"abdominal_pain", "back_pain", "blurred_vision", "dry_cough",
	"wet_cough", "sinus_pressure", "sneezing", "rapid_heartbeat",
	"slow_heartbeat", "dehydration", "loss_of_appetite",
	"sleep_disturbance", "anxiety", "irritability",
	"muscle_spasm", "skin_redness", "itchiness",
	"breathing_difficulty",
}

// FeatureVector is an ordered numeric encoding of one symptom report,
// index-aligned to a Schema. Length always equals Schema.Len().
type FeatureVector []float64

// Schema is the ordered, immutable feature layout shared by the extractor,
// the scaler and the score backend. Built once at startup and read
// concurrently without locking.
type Schema struct {
	names   []string
	phrases []string
}

// NewSchema creates a Schema from ordered feature names. The first VitalCount
// entries are treated as vitals, the rest as symptom indicators.
func NewSchema(names []string) (*Schema, error) {
	if len(names) <= VitalCount {
		return nil, NewShapeMismatch("schema", VitalCount+1, len(names))
	}
	s := &Schema{
		names:   make([]string, len(names)),
		phrases: make([]string, len(names)),
	}
	copy(s.names, names)
	for i, name := range names {
		// Symptom slot names become human-readable match phrases:
		// "shortness_of_breath" -> "shortness of breath".
		s.phrases[i] = strings.ToLower(strings.ReplaceAll(name, "_", " "))
	}
	return s, nil
}

// DefaultSchema returns the 46-slot layout the shipped artifacts use.
func DefaultSchema() *Schema {
	s, err := NewSchema(defaultFeatureNames)
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return s
}

// Len returns the number of feature slots.
func (s *Schema) Len() int { return len(s.names) }

// Names returns a copy of the ordered slot names.
func (s *Schema) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Phrase returns the lower-cased match phrase for slot i.
func (s *Schema) Phrase(i int) string { return s.phrases[i] }

// NewVector allocates a vector with vital defaults set and every symptom
// slot zeroed.
func (s *Schema) NewVector() FeatureVector {
	v := make(FeatureVector, len(s.names))
	copy(v, vitalDefaults[:])
	return v
}
