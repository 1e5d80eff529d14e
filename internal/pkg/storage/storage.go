package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidFile marks uploads rejected before any storage call.
var ErrInvalidFile = errors.New("invalid upload")

// Uploader stores uploaded files and returns a public URL for them.
type Uploader interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (string, error)
	Delete(ctx context.Context, url string) error
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const maxUploadSize = 5 << 20 // 5 MB

func validateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > maxUploadSize {
		return fmt.Errorf("%w: file too large (%d bytes)", ErrInvalidFile, fileHeader.Size)
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: unsupported file type %s", ErrInvalidFile, ext)
	}
	return nil
}

func objectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%d_%s", prefix, time.Now().Unix(), filepath.Base(filename))
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return content, nil
}
