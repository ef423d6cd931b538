// Package storage persists document and rendered page blobs.
// The filesystem implementation maps keys to paths under a base directory.
package storage

import (
	"context"
	"errors"

	"github.com/JaimeStill/dpi-lab/pkg/lifecycle"
)

var (
	ErrNotFound         = errors.New("storage: key not found")
	ErrPermissionDenied = errors.New("storage: permission denied")
	// ErrInvalidKey covers empty keys and keys that escape the base path.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// System stores and retrieves blobs by key.
type System interface {
	// Store writes data at key, overwriting any existing blob.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns ErrNotFound if key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete is idempotent: deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists.
	Validate(ctx context.Context, key string) (bool, error)

	// Path resolves key to an absolute filesystem path for tools that
	// need to open the blob directly (pdfcpu, ImageMagick).
	Path(ctx context.Context, key string) (string, error)

	Start(lc *lifecycle.Coordinator) error
}
