/*
Package ddb provides the DynamoDB implementation of the ItemStore interface.

The store binds one TableSchema to one DynamoDB table. Every operation
resolves the schema's key patterns from the supplied attribute map and
issues a single SDK call:

	client, _ := ddb.NewDynamoDBClient(ctx, accessKey, secretKey, region)
	store := ddb.NewItemStore(client, storySchema)

	err := store.Save(ctx, map[string]any{
	    "owner":    "johndoe",
	    "story_id": "1234",
	    "title":    "My Story",
	})

	item, err := store.Read(ctx, map[string]any{
	    "owner":    "johndoe",
	    "story_id": "1234",
	})

The resolved PK/SK values are written as string attributes next to the
caller's data, so saved rows carry their own key material. Client failures
are wrapped as ErrStoreWrite/ErrStoreRead and never retried; read misses
surface as ErrNotFound.

The store accepts any DynamoClient, which *dynamodb.Client satisfies; tests
use an in-memory double.
*/
package ddb
