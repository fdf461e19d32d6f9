// Package reports renders diagnosis results into self-contained PDF
// documents and archives them in object storage for later download.
package reports

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousIdentity is the fallback shown when a report is rendered
// without a principal identity.
const AnonymousIdentity = "Anonymous"

// Report describes an archived report document. The rendered PDF itself
// lives in object storage under Key.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Identity    string    `json:"identity"`
	Key         string    `json:"key"`
	SizeBytes   int64     `json:"size_bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}
