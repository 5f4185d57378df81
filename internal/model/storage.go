package model

import (
	"context"
	"io"
)

// Storage persists user avatar blobs in object storage. Download
// returns the stored content type alongside the stream.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
