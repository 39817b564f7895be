package model

import (
	"context"
	"io"
)

// Storage is a read-only view of the object store holding seed documents.
type Storage interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}
