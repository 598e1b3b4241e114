package reconcile

import (
	"context"
	"iter"
)

// Source is an ordered key/value collection to reconcile, such as parsed translations.
type Source interface {
	// All iterates the pairs in the source's natural order.
	All() iter.Seq2[string, string]

	// Len returns the number of distinct keys.
	Len() int
}

// Creator persists a single planned item.
type Creator[T any] interface {
	Create(ctx context.Context, item T) error
}

// CreatorFunc adapts a function to the Creator interface.
type CreatorFunc[T any] func(ctx context.Context, item T) error

// Create calls f(ctx, item).
func (f CreatorFunc[T]) Create(ctx context.Context, item T) error {
	return f(ctx, item)
}
