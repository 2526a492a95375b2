/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package dynawrap provides declarative key-pattern storage over DynamoDB.

Tables are described by key-pattern templates such as "USER#{owner}" and
"STORY#{story_id}". At runtime the placeholders are resolved from an item's
attributes into the PK and SK of a single-table layout, so callers never
assemble composite keys by hand.

The packages layer as follows:
  - keypattern: template parsing, resolution and key matching
  - schema: a table's partition/sort pattern pair, YAML declarations,
    CreateTable specs
  - storagemodels: the Item attribute container and struct codecs
  - datastore: the ItemStore interface
  - datastore/ddb: the DynamoDB-backed ItemStore
  - datastore/mock: an in-memory ItemStore for tests
  - registry: schema lookup by Go type, name, or key shape
  - stream: DynamoDB Streams records back into Items

Basic usage:

	s, _ := schema.New("stories", "USER#{owner}", "STORY#{story_id}")
	client, _ := ddb.NewDynamoDBClient(ctx, accessKey, secretKey, region)
	store := ddb.NewItemStore(client, s)

	err := store.Save(ctx, map[string]any{
		"owner":    "kei",
		"story_id": "s-100",
		"title":    "First light",
	})

	item, err := store.Read(ctx, map[string]any{"owner": "kei", "story_id": "s-100"})

A Storage manager registers stores under string keys so application code can
resolve them by name:

	storage := dynawrap.NewStorageManager()
	_ = storage.RegisterStore("stories", store)
*/
package dynawrap
