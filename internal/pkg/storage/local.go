package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
)

// LocalUploader writes files under a directory on disk and returns
// path-style URLs. Used when no S3 bucket is configured and in tests.
type LocalUploader struct {
	Dir string
}

func NewLocalUploader(dir string) *LocalUploader {
	return &LocalUploader{Dir: dir}
}

func (u *LocalUploader) Upload(_ context.Context, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	if err := validateImage(fileHeader); err != nil {
		return "", err
	}

	content, err := readAll(fileHeader)
	if err != nil {
		return "", err
	}

	key := objectKey(prefix, fileHeader.Filename)
	path := filepath.Join(u.Dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "/media/" + key, nil
}

func (u *LocalUploader) Delete(_ context.Context, url string) error {
	const prefix = "/media/"
	if len(url) <= len(prefix) {
		return nil
	}
	return os.Remove(filepath.Join(u.Dir, url[len(prefix):]))
}
