// Package storage persists product banner images and hands back the URL
// the rest of the system stores as an opaque string.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader turns an image stream into a persisted, servable URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, data io.Reader) (string, error)
}

// DiskUploader stores uploads on the local filesystem and serves them
// under a base URL path.
type DiskUploader struct {
	dir     string
	baseURL string
}

// NewDiskUploader creates an uploader rooted at dir. The directory is
// created on first use.
func NewDiskUploader(dir, baseURL string) *DiskUploader {
	return &DiskUploader{dir: dir, baseURL: baseURL}
}

// Upload writes the image to disk under a collision-free name and
// returns its public URL path.
func (u *DiskUploader) Upload(ctx context.Context, filename string, data io.Reader) (string, error) {
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	ext := filepath.Ext(filename)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[0:8], ext)

	f, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return path.Join("/", strings.TrimPrefix(u.baseURL, "/"), name), nil
}

// Dir returns the directory uploads are written to, for static serving.
func (u *DiskUploader) Dir() string {
	return u.dir
}
