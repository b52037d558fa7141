// Package uploads validates and stores résumé photo uploads.
package uploads

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxPhotoBytes is the upload size ceiling.
const MaxPhotoBytes = 2 << 20 // 2 MiB

// PublicPrefix is the URL path under which stored photos are served.
const PublicPrefix = "/static/uploads/"

var (
	// ErrDisallowedType rejects uploads outside the PNG/JPEG allow-list.
	ErrDisallowedType = errors.New("invalid file type, only PNG and JPEG allowed")
	// ErrTooLarge rejects uploads above MaxPhotoBytes.
	ErrTooLarge = errors.New("file too large, maximum allowed is 2MB")
)

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

var allowedContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
}

// Validate checks a photo by file extension, declared content type and
// declared size. An empty declared type is tolerated; the extension check
// alone governs. File content is never inspected.
func Validate(filename, declaredType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrDisallowedType
	}
	if declaredType != "" {
		if _, ok := allowedContentTypes[declaredType]; !ok {
			return ErrDisallowedType
		}
	}
	if size > MaxPhotoBytes {
		return ErrTooLarge
	}
	return nil
}
