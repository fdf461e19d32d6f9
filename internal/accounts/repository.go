package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/naz99/Autism-App/pkg/repository"
)

const maxCredentialLen = 128

type repo struct {
	db     *sql.DB
	auth   *TokenIssuer
	logger *slog.Logger
}

// New creates an account repository implementing the System interface.
func New(db *sql.DB, auth *TokenIssuer, logger *slog.Logger) System {
	return &repo{
		db:     db,
		auth:   auth,
		logger: logger.With("system", "accounts"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.auth, r.logger)
}

func (r *repo) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" ||
		len(username) > maxCredentialLen || len(password) > maxCredentialLen {
		return ErrMalformedInput
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = r.db.ExecContext(
		ctx,
		"INSERT INTO accounts(username, password_hash) VALUES ($1, $2)",
		username, hash,
	)
	if err != nil {
		err = repository.MapError(err, errNotFound, ErrUsernameTaken)
		if errors.Is(err, ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("%w: insert account: %v", ErrStoreUnavailable, err)
	}

	r.logger.Info("account registered", "username", username)
	return nil
}

func (r *repo) Verify(ctx context.Context, username, password string) (bool, error) {
	hash, err := repository.QueryOne(
		ctx, r.db,
		"SELECT password_hash FROM accounts WHERE username = $1",
		[]any{strings.TrimSpace(username)},
		scanPasswordHash,
	)
	if err != nil {
		err = repository.MapError(err, errNotFound, ErrUsernameTaken)
		if errors.Is(err, errNotFound) {
			// burn the same work as a real comparison
			verifyDecoy(password)
			return false, nil
		}
		return false, fmt.Errorf("%w: query account: %v", ErrStoreUnavailable, err)
	}

	return VerifyPassword(hash, password), nil
}

func scanPasswordHash(s repository.Scanner) (string, error) {
	var hash string
	err := s.Scan(&hash)
	return hash, err
}
