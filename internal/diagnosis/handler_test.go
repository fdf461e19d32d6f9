package diagnosis_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/diagnosis"
	"github.com/naz99/Autism-App/internal/screening"
	"github.com/naz99/Autism-App/pkg/routes"
)

type stubSystem struct {
	result *diagnosis.Result
	err    error
}

func (s *stubSystem) Handler() *diagnosis.Handler { return nil }

func (s *stubSystem) Diagnose(ctx context.Context, in screening.Input) (*diagnosis.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

const validBody = `{
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

func testMux(t *testing.T, sys diagnosis.System, auth *accounts.TokenIssuer) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	routes.Register(mux, diagnosis.NewHandler(sys, auth, discard()).Routes())
	return mux
}

func TestHandlerDiagnose(t *testing.T) {
	auth := accounts.NewTokenIssuer("handler-test-secret", time.Hour)
	sys := &stubSystem{result: &diagnosis.Result{Label: diagnosis.Positive, ModelVersion: "2024.1"}}
	mux := testMux(t, sys, auth)

	token, err := auth.Issue("clinician")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest("POST", "/diagnosis", strings.NewReader(validBody))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result diagnosis.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Label != diagnosis.Positive {
		t.Errorf("label = %v, want Positive", result.Label)
	}
}

func TestHandlerRequiresToken(t *testing.T) {
	auth := accounts.NewTokenIssuer("handler-test-secret", time.Hour)
	mux := testMux(t, &stubSystem{}, auth)

	req := httptest.NewRequest("POST", "/diagnosis", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandlerRejectsMalformedBody(t *testing.T) {
	auth := accounts.NewTokenIssuer("handler-test-secret", time.Hour)
	mux := testMux(t, &stubSystem{}, auth)

	token, err := auth.Issue("clinician")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest("POST", "/diagnosis", strings.NewReader(`{"speech_delay": "maybe"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestHandlerMapsSystemErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", diagnosis.ErrValidation, http.StatusUnprocessableEntity},
		{"artifact unavailable", diagnosis.ErrArtifactUnavailable, http.StatusServiceUnavailable},
	}

	auth := accounts.NewTokenIssuer("handler-test-secret", time.Hour)
	token, err := auth.Issue("clinician")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := testMux(t, &stubSystem{err: tt.err}, auth)

			req := httptest.NewRequest("POST", "/diagnosis", strings.NewReader(validBody))
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
