// Package storage provides write-once file storage for uploaded images,
// magazine PDFs and cover thumbnails. Three backends are supported: an
// S3-compatible object store, a plain FTP drop, and the local public
// directory. Filenames are caller-generated UUIDs/slugs, so backends never
// see write/write conflicts.
package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
)

// Uploader stores a file under the given subdirectory/filename and returns
// its public URL.
type Uploader interface {
	Upload(ctx context.Context, subdir, filename string, body io.Reader, contentType string, size int64) (string, error)
}

// Chain tries each backend in order and returns the first successful upload.
// Backends after the first need a re-readable body, so Upload buffers the
// input once before fanning out.
type Chain []Uploader

func (c Chain) Upload(ctx context.Context, subdir, filename string, body io.Reader, contentType string, size int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	var lastErr error
	for _, backend := range c {
		url, err := backend.Upload(ctx, subdir, filename, bytes.NewReader(data), contentType, int64(len(data)))
		if err == nil {
			return url, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("storage: no backends configured")
	}
	return "", lastErr
}
