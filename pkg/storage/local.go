package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalUploader writes files under a public directory on local disk.
// It is the fallback when neither S3 nor FTP is configured.
type LocalUploader struct {
	rootDir string // e.g. "public"
	baseURL string // e.g. "" → URLs like /uploads/<file>
}

// NewLocalUploader creates a local-disk uploader rooted at rootDir
func NewLocalUploader(rootDir, baseURL string) *LocalUploader {
	if rootDir == "" {
		rootDir = "public"
	}
	return &LocalUploader{rootDir: rootDir, baseURL: baseURL}
}

// Upload writes the file to <rootDir>/<subdir>/<filename> and returns
// a site-relative URL.
func (u *LocalUploader) Upload(_ context.Context, subdir, filename string, body io.Reader, _ string, _ int64) (string, error) {
	dir := filepath.Join(u.rootDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("local storage mkdir failed: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("local storage create failed: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("local storage write failed: %w", err)
	}

	if subdir == "" {
		return u.baseURL + "/" + filename, nil
	}
	return u.baseURL + "/" + subdir + "/" + filename, nil
}
