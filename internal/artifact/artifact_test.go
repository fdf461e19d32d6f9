package artifact_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/naz99/Autism-App/internal/artifact"
	"github.com/naz99/Autism-App/internal/screening"
)

func scalerDoc() map[string]any {
	mean := make([]float64, screening.FeatureCount)
	scale := make([]float64, screening.FeatureCount)
	for i := range scale {
		scale[i] = 1
	}
	return map[string]any{
		"version":       "test.1",
		"feature_names": screening.FieldNames[:],
		"mean":          mean,
		"scale":         scale,
	}
}

// modelDoc builds a two-tree forest splitting on social_responsiveness:
// tree 0 votes positive at or below 4.5, tree 1 votes positive above.
// The trees always disagree, so every vote splits 1-1.
func modelDoc() map[string]any {
	return map[string]any{
		"version":       "test.1",
		"feature_names": screening.FieldNames[:],
		"trees": []map[string]any{
			{
				"feature":        []int{0, -2, -2},
				"threshold":      []float64{4.5, 0, 0},
				"children_left":  []int{1, -1, -1},
				"children_right": []int{2, -1, -1},
				"value":          [][2]float64{{5, 5}, {1, 9}, {9, 1}},
			},
			{
				"feature":        []int{0, -2, -2},
				"threshold":      []float64{4.5, 0, 0},
				"children_left":  []int{1, -1, -1},
				"children_right": []int{2, -1, -1},
				"value":          [][2]float64{{5, 5}, {9, 1}, {1, 9}},
			},
		},
	}
}

func marshal(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal test doc: %v", err)
	}
	return data
}

func decode(t *testing.T, model, scaler map[string]any) (*artifact.Artifact, error) {
	t.Helper()
	return artifact.Decode(marshal(t, model), marshal(t, scaler))
}

func TestDecodeValidPair(t *testing.T) {
	a, err := decode(t, modelDoc(), scalerDoc())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if a.Version() != "test.1" {
		t.Errorf("Version() = %q, want test.1", a.Version())
	}
	if len(a.Forest.Trees) != 2 {
		t.Errorf("got %d trees, want 2", len(a.Forest.Trees))
	}
}

func TestDecodeRejectsCorruptPairs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(model, scaler map[string]any)
	}{
		{"version mismatch", func(m, s map[string]any) { s["version"] = "test.2" }},
		{"missing model version", func(m, s map[string]any) { m["version"] = "" }},
		{"swapped feature names", func(m, s map[string]any) {
			names := append([]string(nil), screening.FieldNames[:]...)
			names[0], names[1] = names[1], names[0]
			s["feature_names"] = names
		}},
		{"short feature names", func(m, s map[string]any) {
			m["feature_names"] = screening.FieldNames[:6]
		}},
		{"short mean", func(m, s map[string]any) { s["mean"] = []float64{0, 0} }},
		{"zero scale", func(m, s map[string]any) {
			scale := make([]float64, screening.FeatureCount)
			scale[3] = 0
			s["scale"] = scale
		}},
		{"no trees", func(m, s map[string]any) { m["trees"] = []map[string]any{} }},
		{"ragged tree", func(m, s map[string]any) {
			m["trees"].([]map[string]any)[0]["threshold"] = []float64{4.5}
		}},
		{"backward child", func(m, s map[string]any) {
			m["trees"].([]map[string]any)[0]["children_left"] = []int{0, -1, -1}
		}},
		{"child out of range", func(m, s map[string]any) {
			m["trees"].([]map[string]any)[0]["children_right"] = []int{7, -1, -1}
		}},
		{"invalid split feature", func(m, s map[string]any) {
			m["trees"].([]map[string]any)[0]["feature"] = []int{12, -2, -2}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, scaler := modelDoc(), scalerDoc()
			tt.mutate(model, scaler)

			_, err := decode(t, model, scaler)
			if err == nil {
				t.Fatal("Decode accepted a corrupt pair")
			}
			if !errors.Is(err, artifact.ErrCorrupt) {
				t.Errorf("error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := artifact.Decode([]byte("{"), marshal(t, scalerDoc()))
	if !errors.Is(err, artifact.ErrCorrupt) {
		t.Errorf("error = %v, want ErrCorrupt", err)
	}
}

func TestNormalize(t *testing.T) {
	scaler := scalerDoc()
	mean := make([]float64, screening.FeatureCount)
	scale := make([]float64, screening.FeatureCount)
	for i := range scale {
		mean[i] = 2
		scale[i] = 4
	}
	scaler["mean"] = mean
	scaler["scale"] = scale

	a, err := decode(t, modelDoc(), scaler)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	var v [screening.FeatureCount]float64
	v[0] = 10

	out := a.Normalize(v)
	if out[0] != 2 {
		t.Errorf("out[0] = %v, want (10-2)/4 = 2", out[0])
	}
	if out[1] != -0.5 {
		t.Errorf("out[1] = %v, want (0-2)/4 = -0.5", out[1])
	}
}

func TestClassifyTieIsNegative(t *testing.T) {
	a, err := decode(t, modelDoc(), scalerDoc())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	var v [screening.FeatureCount]float64
	v[0] = 2 // tree 0 votes 1, tree 1 votes 0

	if got := a.Classify(v); got != 0 {
		t.Errorf("Classify on a split vote = %d, want 0", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	a, err := decode(t, modelDoc(), scalerDoc())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	var v [screening.FeatureCount]float64
	v[0] = 7

	first := a.Classify(a.Normalize(v))
	for range 100 {
		if got := a.Classify(a.Normalize(v)); got != first {
			t.Fatalf("classification changed between identical calls: %d vs %d", got, first)
		}
	}
}
