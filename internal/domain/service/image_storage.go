package service

import (
	"context"
	"io"
)

// ImageStorage persists product images and returns an opaque reference to them.
type ImageStorage interface {
	// Save stores the image uploaded by userID and returns its reference.
	Save(ctx context.Context, userID, filename string, r io.Reader) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
