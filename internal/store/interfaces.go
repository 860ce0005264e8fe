package store

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resource_storage_mock.go -package=mock

// ResourceStorage is the resource store: a flat mapping from resource path
// to a JSON document.
//
// Implementations must be safe for concurrent use. A Get never observes a
// partially written value, and concurrent Puts to the same id leave exactly
// one of the written values in place.
type ResourceStorage interface {
	// Get returns the stored document for id, or [ErrResourceNotFound].
	Get(ctx context.Context, id string) (json.RawMessage, error)

	// Put inserts or overwrites the document stored under id.
	Put(ctx context.Context, id string, value json.RawMessage) error

	// Delete removes id, or returns [ErrResourceNotFound] if it is absent.
	Delete(ctx context.Context, id string) error
}
