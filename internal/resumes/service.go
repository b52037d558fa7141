package resumes

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/storage/docstore"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/uploads"
)

// ErrUnknownTemplate rejects template names outside the fixed set.
var ErrUnknownTemplate = errors.New("invalid template selected")

// PhotoUpload carries an uploaded photo stream and its declared metadata.
// The declared size is validated up front and re-measured by the photo
// store before anything is written.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Service assembles, persists and reloads résumé records.
type Service struct {
	Repo   Repo
	Photos *uploads.Store
}

// NewService constructs a Service.
func NewService(repo Repo, photos *uploads.Store) *Service {
	return &Service{Repo: repo, Photos: photos}
}

// Generate validates the submission, stores the photo when present and
// persists a new record owned by ownerID, returning its handle. Any
// rejection happens before persistence; nothing partial is saved.
func (s *Service) Generate(ctx context.Context, ownerID string, in Intake, photo *PhotoUpload) (string, error) {
	if !KnownTemplate(strings.TrimSpace(in.Template)) {
		return "", ErrUnknownTemplate
	}

	data := in.assemble(time.Now().UTC())

	if photo != nil && photo.Filename != "" {
		if err := uploads.Validate(photo.Filename, photo.ContentType, photo.Size); err != nil {
			return "", err
		}
		name, err := s.Photos.Save(photo.Reader, photo.Filename)
		switch {
		case errors.Is(err, uploads.ErrTooLarge):
			return "", err
		case err != nil:
			// A storage failure loses the photo but not the résumé.
			telemetry.Error("resumes.photo_store_failed", map[string]any{"err": err.Error()})
			data.PhotoExists = false
		default:
			data.Photo = uploads.PublicPrefix + name
			data.PhotoExists = true
		}
	}

	rec := Record{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Data:    data,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return "", err
	}
	return docstore.Key(rec.OwnerID, rec.ID), nil
}

// DownloadPath returns the on-disk path of the stored JSON document
// behind handle, verifying the document still exists.
func (s *Service) DownloadPath(ctx context.Context, handle string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.Repo.DocumentPath(handle)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}
