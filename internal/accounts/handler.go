package accounts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/naz99/Autism-App/pkg/handlers"
	"github.com/naz99/Autism-App/pkg/routes"
)

// Handler provides HTTP endpoints for account operations.
type Handler struct {
	sys    System
	auth   *TokenIssuer
	logger *slog.Logger
}

// Credentials is the request body for registration and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the login response carrying the bearer token.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// NewHandler creates a Handler with the given system, token issuer, and logger.
func NewHandler(sys System, auth *TokenIssuer, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		auth:   auth,
		logger: logger.With("handler", "accounts"),
	}
}

// Routes returns the route group for account endpoints. Registration and
// login are the only unauthenticated routes in the API.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/accounts",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/register", Handler: h.Register},
			{Method: "POST", Pattern: "/login", Handler: h.Login},
		},
	}
}

// Register creates a new account from a credentials JSON body.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Register(r.Context(), creds.Username, creds.Password); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{
		"username": creds.Username,
	})
}

// Login verifies credentials and issues a session token. Every failed
// verification takes the same path, so unknown usernames and wrong
// passwords are indistinguishable in the response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	ok, err := h.sys.Verify(r.Context(), creds.Username, creds.Password)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if !ok {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrInvalidCredentials), ErrInvalidCredentials)
		return
	}

	token, err := h.auth.Issue(creds.Username)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Session{
		Username: creds.Username,
		Token:    token,
	})
}
