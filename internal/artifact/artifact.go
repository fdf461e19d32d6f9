// Package artifact loads and evaluates the versioned (scaler, classifier)
// pair produced by the offline training step. The pair is decoded once,
// validated structurally against the screening schema, and shared
// read-only by all concurrent diagnosis requests.
package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/naz99/Autism-App/internal/screening"
)

// Scaler is the per-feature affine transform fitted on the training data.
type Scaler struct {
	Version      string    `json:"version"`
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// Tree is a decision tree in flattened array form: node i is internal
// when Left[i] != -1, with descent going left on
// x[Feature[i]] <= Threshold[i]. Value[i] holds the training sample
// counts per class at node i.
type Tree struct {
	Feature   []int       `json:"feature"`
	Threshold []float64   `json:"threshold"`
	Left      []int       `json:"children_left"`
	Right     []int       `json:"children_right"`
	Value     [][2]float64 `json:"value"`
}

// Forest is the trained ensemble classifier.
type Forest struct {
	Version      string   `json:"version"`
	FeatureNames []string `json:"feature_names"`
	Trees        []Tree   `json:"trees"`
}

// Artifact is the immutable, validated (scaler, forest) pair.
type Artifact struct {
	Scaler Scaler
	Forest Forest
}

// Decode deserializes and validates the two artifact blobs. Either blob
// being malformed, or the pair disagreeing on version or feature order,
// fails with ErrCorrupt; there is no partial or degraded mode.
func Decode(model, scaler []byte) (*Artifact, error) {
	var a Artifact

	if err := json.Unmarshal(scaler, &a.Scaler); err != nil {
		return nil, fmt.Errorf("%w: scaler: %v", ErrCorrupt, err)
	}
	if err := json.Unmarshal(model, &a.Forest); err != nil {
		return nil, fmt.Errorf("%w: model: %v", ErrCorrupt, err)
	}

	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return &a, nil
}

// Version returns the version string shared by both blobs.
func (a *Artifact) Version() string {
	return a.Forest.Version
}

// Normalize applies the per-feature affine transform (x - mean) / scale.
// Pure, no side effects.
func (a *Artifact) Normalize(v [screening.FeatureCount]float64) [screening.FeatureCount]float64 {
	var out [screening.FeatureCount]float64
	for i := range v {
		out[i] = (v[i] - a.Scaler.Mean[i]) / a.Scaler.Scale[i]
	}
	return out
}

// Classify evaluates the ensemble on a normalized vector and returns the
// majority-vote class. A split vote returns 0: a screening tool does not
// report a positive result on a tie. Deterministic for a fixed artifact
// and input.
func (a *Artifact) Classify(v [screening.FeatureCount]float64) int {
	positive := 0
	for i := range a.Forest.Trees {
		positive += a.Forest.Trees[i].predict(v)
	}

	if positive*2 > len(a.Forest.Trees) {
		return 1
	}
	return 0
}

func (t *Tree) predict(v [screening.FeatureCount]float64) int {
	i := 0
	for t.Left[i] != -1 {
		if v[t.Feature[i]] <= t.Threshold[i] {
			i = t.Left[i]
		} else {
			i = t.Right[i]
		}
	}

	if t.Value[i][1] > t.Value[i][0] {
		return 1
	}
	return 0
}

func (a *Artifact) validate() error {
	if a.Forest.Version == "" || a.Scaler.Version == "" {
		return fmt.Errorf("missing version")
	}
	if a.Forest.Version != a.Scaler.Version {
		return fmt.Errorf(
			"version mismatch: model %q vs scaler %q",
			a.Forest.Version, a.Scaler.Version,
		)
	}

	if err := validateFeatureNames("scaler", a.Scaler.FeatureNames); err != nil {
		return err
	}
	if err := validateFeatureNames("model", a.Forest.FeatureNames); err != nil {
		return err
	}

	if len(a.Scaler.Mean) != screening.FeatureCount || len(a.Scaler.Scale) != screening.FeatureCount {
		return fmt.Errorf(
			"scaler has %d mean / %d scale entries, want %d",
			len(a.Scaler.Mean), len(a.Scaler.Scale), screening.FeatureCount,
		)
	}
	for i, s := range a.Scaler.Scale {
		if s == 0 {
			return fmt.Errorf("scaler scale[%d] is zero", i)
		}
	}

	if len(a.Forest.Trees) == 0 {
		return fmt.Errorf("model has no trees")
	}
	for i := range a.Forest.Trees {
		if err := a.Forest.Trees[i].validate(); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}

	return nil
}

func validateFeatureNames(blob string, names []string) error {
	if len(names) != screening.FeatureCount {
		return fmt.Errorf(
			"%s declares %d features, want %d",
			blob, len(names), screening.FeatureCount,
		)
	}
	for i, name := range names {
		if name != screening.FieldNames[i] {
			return fmt.Errorf(
				"%s feature %d is %q, schema expects %q",
				blob, i, name, screening.FieldNames[i],
			)
		}
	}
	return nil
}

func (t *Tree) validate() error {
	n := len(t.Feature)
	if n == 0 {
		return fmt.Errorf("empty tree")
	}
	if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
		return fmt.Errorf("ragged node arrays")
	}

	for i := range n {
		left, right := t.Left[i], t.Right[i]

		if left == -1 && right == -1 {
			continue
		}
		// internal node: children must point strictly forward, which
		// also rules out cycles
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("node %d has invalid children (%d, %d)", i, left, right)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= screening.FeatureCount {
			return fmt.Errorf("node %d splits on invalid feature %d", i, t.Feature[i])
		}
	}

	return nil
}
