package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

// Object is one downloaded blob.
type Object struct {
	Data        []byte
	ContentType string
}

// ObjectStore is the narrow contract the lifecycle engine needs from the
// remote bucket. Keys are opaque strings; Put overwrites, Delete is a no-op
// for absent keys.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}
