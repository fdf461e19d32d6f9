// Package screening defines the canonical schema for the 12 behavioral
// and demographic screening observations consumed by the classifier.
//
// The positional order in this package is the order the model artifact
// pair was fitted with. Reordering fields silently corrupts predictions
// without raising an error, so the numeric feature tuple is only ever
// built by Encode; no caller constructs it inline.
package screening

import (
	"fmt"
	"strconv"
)

// FeatureCount is the fixed width of the encoded feature vector.
const FeatureCount = 12

// Feature positions. These constants are the single source of truth for
// field order; artifact blobs are validated against them at load time.
const (
	PosSocialResponsiveness = iota
	PosAge
	PosSpeechDelay
	PosLearningDisorder
	PosGeneticDisorders
	PosDepression
	PosIntellectualDisability
	PosSocialBehavioralIssues
	PosAnxietyDisorder
	PosGender
	PosJaundice
	PosFamilyHistoryASD
)

// FieldNames lists the schema field names in encoding order. Artifact
// blobs carry the same list and must match it exactly.
var FieldNames = [FeatureCount]string{
	"social_responsiveness",
	"age",
	"speech_delay",
	"learning_disorder",
	"genetic_disorders",
	"depression",
	"intellectual_disability",
	"social_behavioral_issues",
	"anxiety_disorder",
	"gender",
	"jaundice",
	"family_history_asd",
}

// Numeric field bounds, inclusive.
const (
	MinSocialResponsiveness = 0
	MaxSocialResponsiveness = 10
	MinAge                  = 0
	MaxAge                  = 18
)

// Input is one screening record: the typed form of the 12 observations
// collected per diagnosis attempt.
type Input struct {
	SocialResponsiveness   int    `json:"social_responsiveness"`
	Age                    int    `json:"age"`
	SpeechDelay            Flag   `json:"speech_delay"`
	LearningDisorder       Flag   `json:"learning_disorder"`
	GeneticDisorders       Flag   `json:"genetic_disorders"`
	Depression             Flag   `json:"depression"`
	IntellectualDisability Flag   `json:"intellectual_disability"`
	SocialBehavioralIssues Flag   `json:"social_behavioral_issues"`
	AnxietyDisorder        Flag   `json:"anxiety_disorder"`
	Gender                 Gender `json:"gender"`
	Jaundice               Flag   `json:"jaundice"`
	FamilyHistoryASD       Flag   `json:"family_history_asd"`
}

// Validate rejects out-of-range numeric fields. Enumerated fields are
// rejected at parse time, before an Input exists.
func (in Input) Validate() error {
	if in.SocialResponsiveness < MinSocialResponsiveness || in.SocialResponsiveness > MaxSocialResponsiveness {
		return fmt.Errorf(
			"%w: social_responsiveness %d outside [%d,%d]",
			ErrOutOfRange, in.SocialResponsiveness,
			MinSocialResponsiveness, MaxSocialResponsiveness,
		)
	}
	if in.Age < MinAge || in.Age > MaxAge {
		return fmt.Errorf(
			"%w: age %d outside [%d,%d]",
			ErrOutOfRange, in.Age, MinAge, MaxAge,
		)
	}
	if in.Gender != Male && in.Gender != Female {
		return fmt.Errorf("%w: gender not set", ErrOutOfRange)
	}
	return nil
}

// Encode maps the input to the positional feature order the artifact
// pair was fitted with.
func (in Input) Encode() [FeatureCount]float64 {
	var v [FeatureCount]float64
	v[PosSocialResponsiveness] = float64(in.SocialResponsiveness)
	v[PosAge] = float64(in.Age)
	v[PosSpeechDelay] = in.SpeechDelay.encode()
	v[PosLearningDisorder] = in.LearningDisorder.encode()
	v[PosGeneticDisorders] = in.GeneticDisorders.encode()
	v[PosDepression] = in.Depression.encode()
	v[PosIntellectualDisability] = in.IntellectualDisability.encode()
	v[PosSocialBehavioralIssues] = in.SocialBehavioralIssues.encode()
	v[PosAnxietyDisorder] = in.AnxietyDisorder.encode()
	v[PosGender] = in.Gender.encode()
	v[PosJaundice] = in.Jaundice.encode()
	v[PosFamilyHistoryASD] = in.FamilyHistoryASD.encode()
	return v
}

// Field pairs a display label with a rendered answer for the report layer.
type Field struct {
	Label string
	Value string
}

// Fields returns the labeled human-readable dump of all 12 observations
// in schema order: booleans as "Yes"/"No", numerics verbatim.
func (in Input) Fields() [FeatureCount]Field {
	return [FeatureCount]Field{
		{"Social Responsiveness", strconv.Itoa(in.SocialResponsiveness)},
		{"Age", strconv.Itoa(in.Age)},
		{"Speech Delay", in.SpeechDelay.String()},
		{"Learning Disorder", in.LearningDisorder.String()},
		{"Genetic Disorders", in.GeneticDisorders.String()},
		{"Depression", in.Depression.String()},
		{"Intellectual Disability", in.IntellectualDisability.String()},
		{"Social/Behavioral Issues", in.SocialBehavioralIssues.String()},
		{"Anxiety Disorder", in.AnxietyDisorder.String()},
		{"Gender", in.Gender.String()},
		{"Jaundice", in.Jaundice.String()},
		{"Family History of ASD", in.FamilyHistoryASD.String()},
	}
}
