package reports

import (
	"context"
	"io"

	"github.com/naz99/Autism-App/internal/accounts"
	"github.com/naz99/Autism-App/internal/screening"
	"github.com/naz99/Autism-App/pkg/storage"
)

type System interface {
	Handler() *Handler

	// Generate runs a diagnosis for the input, renders the report,
	// and archives a copy under the principal's prefix.
	Generate(ctx context.Context, principal accounts.Principal, input screening.Input) (*Report, []byte, error)

	// List returns the principal's archived reports, newest keys first
	// is not guaranteed; ordering follows the storage backend.
	List(ctx context.Context, principal accounts.Principal, marker string, max int32) (*storage.ListResult, error)

	// Open streams an archived report after verifying the key belongs
	// to the principal.
	Open(ctx context.Context, principal accounts.Principal, key string) (io.ReadCloser, error)
}
