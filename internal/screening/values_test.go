package screening_test

import (
	"encoding/json"
	"testing"

	"github.com/naz99/Autism-App/internal/screening"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    screening.Flag
		wantErr bool
	}{
		{"yes", "Yes", true, false},
		{"no", "No", false, false},
		{"lowercase", "yes", true, false},
		{"uppercase", "NO", false, false},
		{"whitespace", "  Yes ", true, false},
		{"empty", "", false, true},
		{"numeric", "1", false, true},
		{"boolean word", "true", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := screening.ParseFlag(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFlag(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    screening.Gender
		wantErr bool
	}{
		{"male", "Male", screening.Male, false},
		{"female", "Female", screening.Female, false},
		{"lowercase", "female", screening.Female, false},
		{"empty", "", 0, true},
		{"unknown", "other", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := screening.ParseGender(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGender(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseGender(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInputJSONRejectsUnknownLabels(t *testing.T) {
	body := `{
		"social_responsiveness": 2,
		"age": 3,
		"speech_delay": "maybe",
		"gender": "Female"
	}`

	var in screening.Input
	if err := json.Unmarshal([]byte(body), &in); err == nil {
		t.Fatal("expected unmarshal to reject flag value outside Yes/No")
	}
}

func TestInputJSONRoundTrip(t *testing.T) {
	body := `{
		"social_responsiveness": 2,
		"age": 3,
		"speech_delay": "Yes",
		"learning_disorder": "No",
		"genetic_disorders": "No",
		"depression": "No",
		"intellectual_disability": "No",
		"social_behavioral_issues": "No",
		"anxiety_disorder": "No",
		"gender": "Female",
		"jaundice": "No",
		"family_history_asd": "No"
	}`

	var in screening.Input
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !bool(in.SpeechDelay) {
		t.Error("speech_delay should parse to true")
	}
	if in.Gender != screening.Female {
		t.Errorf("gender = %v, want Female", in.Gender)
	}

	out, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back screening.Input
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal failed: %v", err)
	}
	if back != in {
		t.Errorf("round trip mismatch: %+v vs %+v", back, in)
	}
}
