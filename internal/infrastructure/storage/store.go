package storage

import (
	"context"
	"io"
)

// Upload is a single file to be stored
type Upload struct {
	// Name is the original filename, used only for its extension
	Name string
	// Content is read fully when the upload runs
	Content io.Reader
	// Folder groups objects, e.g. "items" or "verifications"
	Folder string
}

// ObjectStore persists uploaded files and serves them by public URL
type ObjectStore interface {
	// Put stores a single file and returns its public URL
	Put(ctx context.Context, upload Upload) (string, error)
	// PutAll stores every file or none. On partial failure the files
	// already written are removed before the error returns.
	PutAll(ctx context.Context, uploads []Upload) ([]string, error)
	// Remove deletes a stored object by its public URL. Unknown URLs
	// are ignored.
	Remove(ctx context.Context, publicURL string) error
}
