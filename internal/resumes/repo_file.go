package resumes

import (
	"context"
	"errors"

	"resume-builder/internal/shared/storage/docstore"
)

// FileRepo stores one JSON document per record. Writes need no lock: the
// record id is freshly generated per save, so no two writes contend on a
// key.
type FileRepo struct {
	Store *docstore.Store
}

// NewFileRepo constructs a FileRepo over the given document store.
func NewFileRepo(store *docstore.Store) *FileRepo {
	return &FileRepo{Store: store}
}

// Create writes the record under its composite key.
func (r *FileRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.Store.WriteDocument(docstore.Key(rec.OwnerID, rec.ID), rec)
}

// Load reads and decodes the record behind handle.
func (r *FileRepo) Load(ctx context.Context, handle string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	var rec Record
	if err := r.Store.ReadDocument(handle, &rec); err != nil {
		if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, docstore.ErrInvalidKey) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// DocumentPath returns the on-disk path of the record behind handle,
// used to serve the raw JSON download.
func (r *FileRepo) DocumentPath(handle string) (string, error) {
	path, err := r.Store.DocumentPath(handle)
	if err != nil {
		return "", ErrNotFound
	}
	return path, nil
}
