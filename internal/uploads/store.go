package uploads

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes validated photos to the uploads directory under fresh
// random names, keeping only the validated extension of the original
// filename.
type Store struct {
	baseDir string
}

// NewStore creates a photo store rooted at baseDir.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save measures the stream's actual length, re-enforces the size ceiling
// against it (the declared size is not trusted), and writes the photo to
// disk. It returns the stored file name.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	size, body, err := measure(r)
	if err != nil {
		return "", fmt.Errorf("measure stream: %w", err)
	}
	if size > MaxPhotoBytes {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	f, err := os.OpenFile(filepath.Join(s.baseDir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return name, nil
}

// Path returns the on-disk location of a stored photo.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// measure returns the stream length, seeking when the medium supports it
// and buffering the whole stream into memory otherwise. The buffering
// path is a known inefficiency for unseekable streams.
func measure(r io.Reader) (int64, io.Reader, error) {
	if sk, ok := r.(io.Seeker); ok {
		size, err := sk.Seek(0, io.SeekEnd)
		if err == nil {
			if _, err := sk.Seek(0, io.SeekStart); err != nil {
				return 0, nil, err
			}
			return size, r, nil
		}
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, nil, err
	}
	return int64(len(buf)), bytes.NewReader(buf), nil
}
