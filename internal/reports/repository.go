package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/diagnosis"
	"github.com/naz99/Autism-App/internal/screening"
	"github.com/naz99/Autism-App/pkg/storage"
)

const archivePrefix = "reports"

type repo struct {
	diagnosis diagnosis.System
	store     storage.System
	auth      *accounts.TokenIssuer
	logger    *slog.Logger
}

func New(diag diagnosis.System, store storage.System, auth *accounts.TokenIssuer, logger *slog.Logger) System {
	return &repo{
		diagnosis: diag,
		store:     store,
		auth:      auth,
		logger:    logger.With("system", "reports"),
	}
}

func (r *repo) Handler() *Handler {
	return &Handler{reports: r, auth: r.auth, logger: r.logger}
}

func (r *repo) Generate(ctx context.Context, principal accounts.Principal, input screening.Input) (*Report, []byte, error) {
	result, err := r.diagnosis.Diagnose(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := Render(principal.Username, result)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	report := &Report{
		ID:          uuid.New(),
		Identity:    principal.Username,
		SizeBytes:   int64(len(pdf)),
		GeneratedAt: result.DiagnosedAt,
	}
	report.Key = archiveKey(principal, report.ID)

	if err := r.store.Upload(ctx, report.Key, bytes.NewReader(pdf), "application/pdf"); err != nil {
		return nil, nil, fmt.Errorf("%w: archive report: %v", ErrStoreUnavailable, err)
	}

	r.logger.Info("report archived",
		"key", report.Key,
		"label", result.Label,
		"size", report.SizeBytes,
	)

	return report, pdf, nil
}

func (r *repo) List(ctx context.Context, principal accounts.Principal, marker string, max int32) (*storage.ListResult, error) {
	result, err := r.store.List(ctx, archivePrefix+"/"+principal.Username+"/", marker, max)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return result, nil
}

func (r *repo) Open(ctx context.Context, principal accounts.Principal, key string) (io.ReadCloser, error) {
	if !ownsKey(principal, key) {
		return nil, ErrForbidden
	}

	reader, err := r.store.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return reader, nil
}

func archiveKey(principal accounts.Principal, id uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s.pdf", archivePrefix, principal.Username, id)
}

func ownsKey(principal accounts.Principal, key string) bool {
	return strings.HasPrefix(key, archivePrefix+"/"+principal.Username+"/")
}

// FilenameFor names the download attachment for a generated report.
func FilenameFor(report *Report) string {
	return fmt.Sprintf("screening-%s-%s.pdf",
		report.GeneratedAt.Format("20060102"), report.ID)
}
