package storage

import (
	"context"
	"io"
)

// Storage abstracts durable placement of uploaded binaries. Paths are
// slash-separated and relative to the backend's root; implementations must
// never interpret caller-supplied text as a path.
type Storage interface {
	// Save writes the reader's content to path, creating parent
	// directories as needed. The data is durable when Save returns.
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)

	// Delete removes the file at path. Deleting a missing file is not an
	// error, so rollback can run over partially failed submissions.
	Delete(ctx context.Context, path string) error

	// Exists reports whether a file is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// FullPath resolves path to the implementation's absolute location,
	// for record keeping.
	FullPath(path string) string
}
