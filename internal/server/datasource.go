package server

import (
	"context"

	"textwatch/internal/model"
)

// DataSource is the slice of the store gateway the handlers need.
type DataSource interface {
	// Connected reports whether the backing store is reachable.
	Connected() bool

	// FetchAll returns every record in the collection.
	FetchAll(ctx context.Context) ([]model.Record, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context) (int64, error)

	// Sample returns one raw document for schema inspection, or nil when
	// the collection is empty.
	Sample(ctx context.Context) (map[string]any, error)
}
