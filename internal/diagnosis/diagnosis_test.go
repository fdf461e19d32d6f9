package diagnosis_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/naz99/Autism-App/internal/artifact"
	"github.com/naz99/Autism-App/internal/diagnosis"
	"github.com/naz99/Autism-App/internal/screening"
	"github.com/naz99/Autism-App/pkg/lifecycle"
	"github.com/naz99/Autism-App/pkg/storage"
)

type memoryStore struct {
	objects map[string][]byte
}

func (m *memoryStore) Start(lc *lifecycle.Coordinator) error { return nil }

func (m *memoryStore) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memoryStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error { return nil }

func (m *memoryStore) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memoryStore) List(ctx context.Context, prefix, marker string, max int32) (*storage.ListResult, error) {
	return &storage.ListResult{}, nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testEngine(t *testing.T) diagnosis.System {
	t.Helper()

	store := &memoryStore{objects: map[string][]byte{}}
	for _, name := range []string{"model.json", "scaler.json"} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatalf("read fixture %s: %v", name, err)
		}
		store.objects["models/"+name] = data
	}

	handle := artifact.NewHandle(store, "models/model.json", "models/scaler.json", discard())
	return diagnosis.New(handle, nil, discard())
}

func positiveInput() screening.Input {
	return screening.Input{
		SocialResponsiveness: 2,
		Age:                  3,
		SpeechDelay:          true,
		Gender:               screening.Female,
	}
}

func negativeInput() screening.Input {
	return screening.Input{
		SocialResponsiveness: 7,
		Age:                  5,
		Gender:               screening.Male,
	}
}

func TestDiagnosePositive(t *testing.T) {
	engine := testEngine(t)

	result, err := engine.Diagnose(t.Context(), positiveInput())
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}

	if result.Label != diagnosis.Positive {
		t.Errorf("label = %v, want Positive", result.Label)
	}
	if result.Label.Display() != "Likely Autism Spectrum Disorder" {
		t.Errorf("display = %q", result.Label.Display())
	}
	if result.ModelVersion != "2024.1" {
		t.Errorf("model version = %q, want 2024.1", result.ModelVersion)
	}
	if time.Since(result.DiagnosedAt) > time.Minute {
		t.Errorf("DiagnosedAt = %v, want recent", result.DiagnosedAt)
	}
}

func TestDiagnoseNegative(t *testing.T) {
	engine := testEngine(t)

	result, err := engine.Diagnose(t.Context(), negativeInput())
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}

	if result.Label != diagnosis.Negative {
		t.Errorf("label = %v, want Negative", result.Label)
	}
	if result.Label.Display() != "Not likely Autism Spectrum Disorder" {
		t.Errorf("display = %q", result.Label.Display())
	}
}

func TestDiagnoseDeterministic(t *testing.T) {
	engine := testEngine(t)
	in := positiveInput()

	first, err := engine.Diagnose(t.Context(), in)
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}

	for range 50 {
		result, err := engine.Diagnose(t.Context(), in)
		if err != nil {
			t.Fatalf("Diagnose failed: %v", err)
		}
		if result.Label != first.Label {
			t.Fatalf("label changed between identical inputs: %v vs %v", result.Label, first.Label)
		}
	}
}

func TestDiagnoseValidation(t *testing.T) {
	engine := testEngine(t)

	in := positiveInput()
	in.Age = 19

	_, err := engine.Diagnose(t.Context(), in)
	if !errors.Is(err, diagnosis.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestDiagnoseArtifactUnavailable(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{}}
	handle := artifact.NewHandle(store, "models/model.json", "models/scaler.json", discard())
	engine := diagnosis.New(handle, nil, discard())

	_, err := engine.Diagnose(t.Context(), positiveInput())
	if !errors.Is(err, diagnosis.ErrArtifactUnavailable) {
		t.Errorf("error = %v, want ErrArtifactUnavailable", err)
	}
}
