package store

import (
	"context"
	"errors"

	"github.com/lakestash/lakestash/internal/model"
)

// ErrNotFound is returned when an item does not exist in the caller's
// partition. A foreign-owned item and a genuinely missing one are
// indistinguishable through this interface.
var ErrNotFound = errors.New("item not found")

// Store is the per-user partitioned collection the API writes through. Every
// operation is scoped by the partition key; there is no way to reach another
// user's items. Replace has last-write-wins semantics with no concurrency
// token.
type Store interface {
	// Create inserts a fully-populated item.
	Create(ctx context.Context, item *model.Item) error

	// List returns every item in the partition, most recently updated first.
	List(ctx context.Context, userID string) ([]model.Item, error)

	// Get returns the item, or nil when it is absent from the partition.
	Get(ctx context.Context, userID, id string) (*model.Item, error)

	// Replace overwrites the stored document wholesale. ErrNotFound when the
	// item no longer exists in its partition.
	Replace(ctx context.Context, item *model.Item) error

	// Delete removes the item. ErrNotFound when absent.
	Delete(ctx context.Context, userID, id string) error
}
