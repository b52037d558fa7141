package resumes

import (
	"context"
	"errors"
)

// ErrNotFound is returned for stale or missing record handles.
var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for résumé records.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	Load(ctx context.Context, handle string) (Record, error)
	DocumentPath(handle string) (string, error)
}
