package screening_test

import (
	"errors"
	"testing"

	"github.com/naz99/Autism-App/internal/screening"
)

func validInput() screening.Input {
	return screening.Input{
		SocialResponsiveness: 5,
		Age:                  6,
		Gender:               screening.Male,
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*screening.Input)
		wantErr bool
	}{
		{"valid", func(in *screening.Input) {}, false},
		{"social min", func(in *screening.Input) { in.SocialResponsiveness = 0 }, false},
		{"social max", func(in *screening.Input) { in.SocialResponsiveness = 10 }, false},
		{"social below", func(in *screening.Input) { in.SocialResponsiveness = -1 }, true},
		{"social above", func(in *screening.Input) { in.SocialResponsiveness = 11 }, true},
		{"age min", func(in *screening.Input) { in.Age = 0 }, false},
		{"age max", func(in *screening.Input) { in.Age = 18 }, false},
		{"age below", func(in *screening.Input) { in.Age = -1 }, true},
		{"age above", func(in *screening.Input) { in.Age = 19 }, true},
		{"gender unset", func(in *screening.Input) { in.Gender = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, screening.ErrOutOfRange) {
				t.Errorf("Validate() error = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestEncodeOrder(t *testing.T) {
	in := screening.Input{
		SocialResponsiveness: 3,
		Age:                  7,
		SpeechDelay:          true,
		Depression:           true,
		Gender:               screening.Female,
		FamilyHistoryASD:     true,
	}

	v := in.Encode()

	if v[screening.PosSocialResponsiveness] != 3 {
		t.Errorf("social_responsiveness = %v, want 3", v[screening.PosSocialResponsiveness])
	}
	if v[screening.PosAge] != 7 {
		t.Errorf("age = %v, want 7", v[screening.PosAge])
	}
	if v[screening.PosSpeechDelay] != 1 {
		t.Errorf("speech_delay = %v, want 1", v[screening.PosSpeechDelay])
	}
	if v[screening.PosLearningDisorder] != 0 {
		t.Errorf("learning_disorder = %v, want 0", v[screening.PosLearningDisorder])
	}
	if v[screening.PosDepression] != 1 {
		t.Errorf("depression = %v, want 1", v[screening.PosDepression])
	}
	if v[screening.PosGender] != 1 {
		t.Errorf("gender = %v, want 1 for female", v[screening.PosGender])
	}
	if v[screening.PosFamilyHistoryASD] != 1 {
		t.Errorf("family_history_asd = %v, want 1", v[screening.PosFamilyHistoryASD])
	}
}

func TestEncodeGenderDirection(t *testing.T) {
	in := validInput()

	in.Gender = screening.Male
	if got := in.Encode()[screening.PosGender]; got != 0 {
		t.Errorf("male encodes to %v, want 0", got)
	}

	in.Gender = screening.Female
	if got := in.Encode()[screening.PosGender]; got != 1 {
		t.Errorf("female encodes to %v, want 1", got)
	}
}

func TestFieldsOrderMatchesSchema(t *testing.T) {
	fields := validInput().Fields()

	if len(fields) != screening.FeatureCount {
		t.Fatalf("Fields() returned %d entries, want %d", len(fields), screening.FeatureCount)
	}
	if fields[screening.PosSocialResponsiveness].Label != "Social Responsiveness" {
		t.Errorf("first field label = %q", fields[screening.PosSocialResponsiveness].Label)
	}
	if fields[screening.PosGender].Value != "Male" {
		t.Errorf("gender field value = %q, want Male", fields[screening.PosGender].Value)
	}
	if fields[screening.PosFamilyHistoryASD].Value != "No" {
		t.Errorf("family history field value = %q, want No", fields[screening.PosFamilyHistoryASD].Value)
	}
}
