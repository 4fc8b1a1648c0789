package blob

import (
	"context"
	"io"
)

// Store is the contract for the external file store: write bytes and get a
// retrievable URL back, delete by URL best-effort.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, blobURL string) error
}
