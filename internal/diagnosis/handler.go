package diagnosis

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/screening"
	"github.com/naz99/Autism-App/pkg/handlers"
	"github.com/naz99/Autism-App/pkg/routes"
)

// Handler provides HTTP endpoints for diagnosis operations.
type Handler struct {
	sys    System
	auth   *accounts.TokenIssuer
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system, token issuer, and logger.
func NewHandler(sys System, auth *accounts.TokenIssuer, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		auth:   auth,
		logger: logger.With("handler", "diagnosis"),
	}
}

// Routes returns the route group for diagnosis endpoints. All routes
// require an authenticated principal.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/diagnosis",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.auth.Require(h.Diagnose)},
		},
	}
}

// Diagnose decodes a screening input JSON body and returns the
// classification result.
func (h *Handler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var input screening.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := h.sys.Diagnose(r.Context(), input)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
