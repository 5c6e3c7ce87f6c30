package storage

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"
)

// Storage abstracts where uploaded images live. The local filesystem
// implementation serves development; S3 (or any S3-compatible store)
// serves production.
type Storage interface {
	// Save stores the file under key and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key.
	Delete(ctx context.Context, key string) error
}

// NewKey generates a collision-free object key for an upload, e.g.
// "uploads/3f1c….webp".
func NewKey(ext string) string {
	return path.Join("uploads", uuid.NewString()+ext)
}
