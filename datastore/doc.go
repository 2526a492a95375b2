/*
Package datastore defines the core interface for dynawrap's persistence
layer.

ItemStore provides the item lifecycle operations over a single table
schema:

	type ItemStore interface {
	    Save(ctx context.Context, attrs map[string]any) error
	    SaveIfNotExists(ctx context.Context, attrs map[string]any) error
	    Read(ctx context.Context, keyAttrs map[string]any) (*storagemodels.Item, error)
	    Update(ctx context.Context, attrs map[string]any) error
	    Delete(ctx context.Context, keyAttrs map[string]any) error
	    QueryPrefix(ctx context.Context, keyAttrs map[string]any) ([]*storagemodels.Item, error)
	}

Implementations:
  - ddb: DynamoDB implementation resolving key patterns into PK/SK values
  - mock: In-memory mock implementation for testing

Every operation is a single synchronous client call; failures surface
immediately as wrapped errors and are never retried internally.
*/
package datastore
