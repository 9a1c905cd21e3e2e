// Package storage wraps the S3-compatible media bucket that holds résumés and business images.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Key prefixes inside the media bucket.
const (
	PrefixResumes    = "resumes"
	PrefixBusinesses = "businesses"
)

// MetaOriginalFilename is the object metadata key holding the uploaded file name.
const MetaOriginalFilename = "original-filename"

// PutObjectOptions describe an upload. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the media bucket client. Methods stream; nothing touches local disk.
type Storage interface {
	// Put uploads r under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL that needs no credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// NewKey builds "<prefix>/<uuid><ext>" keeping only the lower-cased extension of the original name.
func NewKey(prefix, originalFilename string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(originalFilename, "\\", "/")))
	return path.Join(prefix, uuid.NewString()+ext)
}
