// Package docstore persists application documents as JSON files on disk.
// Collections live in one array document each; per-record documents live
// as individual files keyed by "{ownerID}_{recordID}".
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a document key has no stored document.
var ErrNotFound = errors.New("document not found")

// ErrInvalidKey is returned for keys that do not match the
// "{ownerID}_{recordID}" shape.
var ErrInvalidKey = errors.New("invalid document key")

const recordsDirName = "resumes"

// Store is a file-backed JSON document store. It is constructed once at
// process start and shared by reference; collection writes are serialized
// by a single process-wide lock, so it is safe for one process only.
type Store struct {
	dataDir    string
	recordsDir string

	mu sync.Mutex // guards collection read-modify-write cycles
}

// New creates the store rooted at dataDir, creating directories as needed.
func New(dataDir string) (*Store, error) {
	recordsDir := filepath.Join(dataDir, recordsDirName)
	if err := os.MkdirAll(recordsDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{dataDir: dataDir, recordsDir: recordsDir}, nil
}

// LoadCollection decodes the named collection document into v. A missing
// collection leaves v untouched. Reads take no lock; a concurrent write
// can be invisible to an in-flight read, which is accepted.
func (s *Store) LoadCollection(name string, v any) error {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode collection %s: %w", name, err)
	}
	return nil
}

// MutateCollection runs fn over the decoded collection under the
// process-wide lock and writes the result back. v must be a pointer to
// the collection value that fn mutates.
func (s *Store) MutateCollection(name string, v any, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.LoadCollection(name, v); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, name), data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

// WriteDocument stores v as a new JSON document under key. The key must
// be freshly generated; an existing document is never overwritten, which
// also makes these writes safe without the collection lock.
func (s *Store) WriteDocument(key string, v any) error {
	path, err := s.DocumentPath(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create document %s: %w", key, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	return nil
}

// ReadDocument decodes the document stored under key into v.
func (s *Store) ReadDocument(key string, v any) error {
	path, err := s.DocumentPath(key)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read document %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode document %s: %w", key, err)
	}
	return nil
}

// DocumentPath returns the on-disk path for a document key after
// validating its shape, so a handle can never escape the records dir.
func (s *Store) DocumentPath(key string) (string, error) {
	if _, _, err := SplitKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.recordsDir, key+".json"), nil
}

// Key builds the composite document key for a record.
func Key(ownerID, recordID string) string {
	return ownerID + "_" + recordID
}

// SplitKey validates a composite key and returns its owner and record
// ids. Both halves must be well-formed UUIDs.
func SplitKey(key string) (ownerID, recordID string, err error) {
	parts := strings.Split(key, "_")
	if len(parts) != 2 {
		return "", "", ErrInvalidKey
	}
	for _, part := range parts {
		if _, err := uuid.Parse(part); err != nil {
			return "", "", ErrInvalidKey
		}
	}
	return parts[0], parts[1], nil
}
