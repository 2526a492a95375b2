/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/dynawrap/storagemodels"
)

// ItemStore is the runtime surface over one table schema. Implementations
// resolve the schema's key patterns from the supplied attribute maps and
// delegate to the underlying store client; they add no retry, caching or
// concurrency coordination of their own.
type ItemStore interface {
	// Save resolves all declared key patterns from the attribute map and
	// writes the row, overwriting any existing row under the same key.
	Save(ctx context.Context, attrs map[string]any) error

	// SaveIfNotExists is Save guarded by a store-side existence condition;
	// it fails with ErrAlreadyExists when the resolved key is taken.
	SaveIfNotExists(ctx context.Context, attrs map[string]any) error

	// Read resolves the key patterns from the minimal attribute subset and
	// returns the stored item, or ErrNotFound on a miss.
	Read(ctx context.Context, keyAttrs map[string]any) (*storagemodels.Item, error)

	// Update persists a merged attribute map. It is a full overwrite via
	// Save; there is no partial-attribute update primitive and no
	// optimistic concurrency control.
	Update(ctx context.Context, attrs map[string]any) error

	// Delete removes the row under the resolved key.
	Delete(ctx context.Context, keyAttrs map[string]any) error

	// QueryPrefix returns every row whose partition key equals the resolved
	// value and whose sort key begins with the longest resolvable prefix.
	QueryPrefix(ctx context.Context, keyAttrs map[string]any) ([]*storagemodels.Item, error)
}
