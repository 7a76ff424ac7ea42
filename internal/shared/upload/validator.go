// Package upload validates incoming files before they reach object storage.
package upload

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	// Registered for the best-effort signature sniff.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog/log"
)

const (
	MaxPDFSize   = 16 << 20 // 16 MiB
	MaxCoverSize = 5 << 20  // 5 MiB
)

var coverExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// File is an uploaded file pulled fully into memory.
type File struct {
	Name string
	Size int64
	Data []byte
}

// Open reads a multipart file header into a File. A nil header yields nil.
func Open(fh *multipart.FileHeader) (*File, error) {
	if fh == nil || fh.Filename == "" {
		return nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return &File{Name: fh.Filename, Size: fh.Size, Data: buf.Bytes()}, nil
}

// ValidatePDF accepts only .pdf (case-insensitive) up to 16 MiB.
func ValidatePDF(f *File) error {
	if f == nil {
		return ErrNoFile
	}
	if !strings.EqualFold(filepath.Ext(f.Name), ".pdf") {
		return ErrInvalidPDFType
	}
	if f.Size > MaxPDFSize {
		return ErrPDFTooLarge
	}
	return nil
}

// ValidateCover checks extension and size, sniffs the content best-effort,
// and returns the collision-resistant storage name. A nil file is fine
// unless required is true. The sniff never rejects on its own: formats the
// stdlib cannot decode (webp among them) pass as long as extension and size
// checks did, favoring availability over strict verification.
func ValidateCover(f *File, required bool) (string, error) {
	if f == nil {
		if required {
			return "", ErrCoverRequired
		}
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	if !coverExtensions[ext] {
		return "", ErrInvalidCoverType
	}
	if f.Size > MaxCoverSize {
		return "", ErrCoverTooLarge
	}

	if _, format, err := image.DecodeConfig(bytes.NewReader(f.Data)); err != nil {
		log.Debug().Str("file", f.Name).Err(err).Msg("cover signature inconclusive, accepting")
	} else {
		log.Debug().Str("file", f.Name).Str("format", format).Msg("cover signature verified")
	}

	return StorageName(f.Name, time.Now()), nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// StorageName prefixes a timestamp to the sanitized original filename so
// repeated uploads of the same file never collide.
func StorageName(original string, now time.Time) string {
	base := filepath.Base(original)
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))

	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	if name == "" {
		name = "file"
	}

	return now.Format("20060102_150405_") + name + ext
}
