package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalUploader writes files under <publicDir>/uploads and returns
// root-relative URLs of the form /uploads/<name>.
type LocalUploader struct {
	publicDir string
}

func NewLocalUploader(publicDir string) *LocalUploader {
	return &LocalUploader{publicDir: publicDir}
}

// UploadsDir returns the directory uploaded files are written to.
func (l *LocalUploader) UploadsDir() string {
	return filepath.Join(l.publicDir, Namespace)
}

func (l *LocalUploader) Upload(ctx context.Context, p Payload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	uploadDir := l.UploadsDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := ObjectName(p.ContentType)
	if err := os.WriteFile(filepath.Join(uploadDir, name), p.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/" + Namespace + "/" + name, nil
}
