package screening

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Flag is a boolean screening answer parsed from the enumerated
// "Yes"/"No" label set. Values outside that set are a validation
// failure, never a silent default.
type Flag bool

// ParseFlag parses a "Yes"/"No" label, case-insensitively.
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: flag value %q (want Yes or No)", ErrOutOfRange, s)
}

func (f Flag) String() string {
	if f {
		return "Yes"
	}
	return "No"
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFlag(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Flag) encode() float64 {
	if f {
		return 1
	}
	return 0
}

// Gender is the demographic sex field of the screening record.
type Gender uint8

const (
	genderUnset Gender = iota
	Male
	Female
)

// ParseGender parses a "Male"/"Female" label, case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return genderUnset, fmt.Errorf("%w: gender value %q (want Male or Female)", ErrOutOfRange, s)
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	}
	return "Unset"
}

func (g Gender) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// encode pins the gender direction the artifact was fitted with:
// Female=1, Male=0. A retrained artifact with the opposite direction is
// expressed by regenerating the blobs, not by editing this function's
// callers.
func (g Gender) encode() float64 {
	if g == Female {
		return 1
	}
	return 0
}
