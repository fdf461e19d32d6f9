package accounts

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/naz99/Autism-App/pkg/handlers"
)

const tokenIssuer = "asd-screening"

// TokenIssuer mints and validates the HMAC-signed session tokens that
// carry a principal between requests.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token identifying the given username.
func (t *TokenIssuer) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates a token and returns the principal it carries.
func (t *TokenIssuer) Parse(token string) (Principal, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(
		token, &claims,
		func(tok *jwt.Token) (any, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
			}
			return t.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return Principal{}, fmt.Errorf("token missing subject")
	}

	return Principal{Username: claims.Subject}, nil
}

// Require wraps a handler so it only runs with an authenticated
// principal in the request context. A missing or invalid bearer token
// yields the same generic 401 either way.
func (t *TokenIssuer) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respondUnauthorized(w)
			return
		}

		principal, err := t.Parse(token)
		if err != nil {
			respondUnauthorized(w)
			return
		}

		next(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func respondUnauthorized(w http.ResponseWriter) {
	handlers.RespondJSON(
		w, http.StatusUnauthorized,
		map[string]string{"error": "authentication required"},
	)
}
