package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/diagnosis"
	"github.com/naz99/Autism-App/internal/screening"
	"github.com/naz99/Autism-App/pkg/handlers"
	"github.com/naz99/Autism-App/pkg/routes"
)

const defaultListSize = 50

// Handler provides HTTP endpoints for report generation and retrieval.
type Handler struct {
	reports System
	auth    *accounts.TokenIssuer
	logger  *slog.Logger
}

// Routes returns the route group for report endpoints. All routes
// require an authenticated principal.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.auth.Require(h.Generate)},
			{Method: "GET", Pattern: "", Handler: h.auth.Require(h.List)},
			{Method: "GET", Pattern: "/download/{key...}", Handler: h.auth.Require(h.Download)},
		},
	}
}

// Generate runs a diagnosis on the posted screening input and responds
// with the rendered PDF as a download attachment.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	principal, ok := accounts.PrincipalFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var input screening.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	report, pdf, err := h.reports.Generate(r.Context(), principal, input)
	if err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", FilenameFor(report)))
	w.Header().Set("Content-Length", strconv.FormatInt(report.SizeBytes, 10))
	w.Header().Set("X-Report-Key", report.Key)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// List returns one page of the principal's archived reports. Paging
// uses the marker query parameter from a previous response.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := accounts.PrincipalFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	result, err := h.reports.List(r.Context(), principal, r.URL.Query().Get("marker"), defaultListSize)
	if err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Download streams an archived report owned by the principal.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	principal, ok := accounts.PrincipalFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	reader, err := h.reports.Open(r.Context(), principal, r.PathValue("key"))
	if err != nil {
		handlers.RespondError(w, h.logger, statusFor(err), err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("stream report", "error", err)
	}
}

// statusFor maps both report and underlying diagnosis errors, since
// Generate surfaces diagnosis failures directly.
func statusFor(err error) int {
	if errors.Is(err, diagnosis.ErrValidation) || errors.Is(err, diagnosis.ErrArtifactUnavailable) {
		return diagnosis.MapHTTPStatus(err)
	}
	return MapHTTPStatus(err)
}
