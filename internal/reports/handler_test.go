package reports_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/diagnosis"
	"github.com/naz99/Autism-App/internal/reports"
	"github.com/naz99/Autism-App/pkg/routes"
	"github.com/naz99/Autism-App/pkg/storage"
)

const screeningBody = `{
	"social_responsiveness": 7,
	"age": 5,
	"speech_delay": "No",
	"learning_disorder": "No",
	"genetic_disorders": "No",
	"depression": "No",
	"intellectual_disability": "No",
	"social_behavioral_issues": "No",
	"anxiety_disorder": "No",
	"gender": "Male",
	"jaundice": "No",
	"family_history_asd": "No"
}`

func reportsMux(t *testing.T, store *memoryStore, diag diagnosis.System) (*http.ServeMux, string) {
	t.Helper()

	auth := accounts.NewTokenIssuer("reports-test-secret", time.Hour)
	sys := reports.New(diag, store, auth, slog.New(slog.DiscardHandler))

	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	token, err := auth.Issue("clinician")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return mux, token
}

func TestHandlerGenerate(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{}}
	mux, token := reportsMux(t, store, &stubDiagnosis{})

	req := httptest.NewRequest("POST", "/reports", strings.NewReader(screeningBody))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment;") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("response body is not a PDF")
	}
	if len(store.objects) != 1 {
		t.Errorf("archived %d objects, want 1", len(store.objects))
	}
}

func TestHandlerGenerateUnauthorized(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{}}
	mux, _ := reportsMux(t, store, &stubDiagnosis{})

	req := httptest.NewRequest("POST", "/reports", strings.NewReader(screeningBody))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandlerGenerateArtifactUnavailable(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{}}
	mux, token := reportsMux(t, store, &stubDiagnosis{err: diagnosis.ErrArtifactUnavailable})

	req := httptest.NewRequest("POST", "/reports", strings.NewReader(screeningBody))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandlerList(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{
		"reports/clinician/a.pdf": []byte("a"),
		"reports/other/b.pdf":     []byte("b"),
	}}
	mux, token := reportsMux(t, store, &stubDiagnosis{})

	req := httptest.NewRequest("GET", "/reports", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result storage.ListResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(result.Objects) != 1 || result.Objects[0].Key != "reports/clinician/a.pdf" {
		t.Errorf("objects = %v", result.Objects)
	}
}

func TestHandlerDownload(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{
		"reports/clinician/a.pdf": []byte("%PDF-1.7 archived"),
	}}
	mux, token := reportsMux(t, store, &stubDiagnosis{})

	req := httptest.NewRequest("GET", "/reports/download/reports/clinician/a.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "%PDF-1.7 archived" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerDownloadForeignKey(t *testing.T) {
	store := &memoryStore{objects: map[string][]byte{
		"reports/other/b.pdf": []byte("%PDF"),
	}}
	mux, token := reportsMux(t, store, &stubDiagnosis{})

	req := httptest.NewRequest("GET", "/reports/download/reports/other/b.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
