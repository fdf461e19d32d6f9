// Package diagnosis implements the screening classification domain. It
// orchestrates validation, encoding, normalization, and ensemble
// evaluation into a deterministic, side-effect-free scoring operation.
package diagnosis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/naz99/Autism-App/internal/screening"
)

// Label is the binary screening classification.
type Label int

const (
	Negative Label = iota
	Positive
)

func (l Label) String() string {
	if l == Positive {
		return "Positive"
	}
	return "Negative"
}

// Display returns the human-readable reading of the label. The screening
// result is a heuristic classification, not a clinical diagnosis, and the
// wording reflects that.
func (l Label) Display() string {
	if l == Positive {
		return "Likely Autism Spectrum Disorder"
	}
	return "Not likely Autism Spectrum Disorder"
}

func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Negative":
		*l = Negative
	case "Positive":
		*l = Positive
	default:
		return fmt.Errorf("unknown label %q", s)
	}
	return nil
}

// Result is the outcome of one diagnosis attempt. It is never persisted
// to the credential database; its only durable form is a rendered report.
type Result struct {
	Label        Label           `json:"label"`
	Input        screening.Input `json:"input"`
	ModelVersion string          `json:"model_version"`
	DiagnosedAt  time.Time       `json:"diagnosed_at"`
}
