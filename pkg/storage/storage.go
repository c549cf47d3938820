// Package storage abstracts the opaque blob store the pipeline reads source
// PDFs from and writes sheet PNGs and tile archives to.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no blob exists under the requested key.
// Workers treat it as a transient miss for keys another component writes
// (uploads may still be settling) and retry at the queue level.
var ErrNotFound = errors.New("blob not found")

// BlobStore is the minimal surface the pipeline needs. Keys follow the
// canonical scheme in pkg/paths. Writes are single-writer-per-key by
// construction, so no store-level locking is required.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}
