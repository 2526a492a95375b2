/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/dynawrap/errors"
	"github.com/suparena/dynawrap/schema"
	"github.com/suparena/dynawrap/storagemodels"
)

// ItemStore implements datastore.ItemStore over a single DynamoDB table.
// It owns neither the client nor its connection handling; each operation is
// one synchronous SDK call whose cancellation and timeout behavior come
// from the caller's context.
type ItemStore struct {
	client DynamoClient
	schema *schema.TableSchema
	log    zerolog.Logger
}

// Option configures an ItemStore.
type Option func(*ItemStore)

// WithLogger attaches a zerolog logger. The default logger discards
// everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *ItemStore) {
		s.log = log
	}
}

// NewItemStore constructs an ItemStore for the given schema.
func NewItemStore(client DynamoClient, s *schema.TableSchema, opts ...Option) *ItemStore {
	store := &ItemStore{
		client: client,
		schema: s,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Schema returns the table schema this store operates on.
func (s *ItemStore) Schema() *schema.TableSchema { return s.schema }

// Save resolves the declared key patterns from the attribute map and puts
// the row, overwriting any existing row under the same resolved key.
func (s *ItemStore) Save(ctx context.Context, attrs map[string]any) error {
	return s.put(ctx, attrs, "")
}

// SaveIfNotExists is Save with a store-side existence condition on the
// partition key attribute. It fails with ErrAlreadyExists when a row with
// the same resolved key is already present.
func (s *ItemStore) SaveIfNotExists(ctx context.Context, attrs map[string]any) error {
	return s.put(ctx, attrs, fmt.Sprintf("attribute_not_exists(%s)", schema.KeyAttrPartition))
}

// Update persists a merged attribute map. It is a full overwrite through
// Save; nothing is read back or compared first.
func (s *ItemStore) Update(ctx context.Context, attrs map[string]any) error {
	return s.Save(ctx, attrs)
}

func (s *ItemStore) put(ctx context.Context, attrs map[string]any, condition string) error {
	key, err := s.schema.ResolveKey(attrs)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(attrs)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}
	for name, value := range key {
		av[name] = &types.AttributeValueMemberS{Value: value}
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.schema.Name()),
		Item:      av,
	}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}

	if _, err = s.client.PutItem(ctx, input); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			s.log.Warn().
				Str("table", s.schema.Name()).
				Str("key", keyString(key)).
				Msg("item already exists")
			return errors.NewAlreadyExistsError(s.schema.Name(), keyString(key))
		}
		s.log.Error().Err(err).
			Str("table", s.schema.Name()).
			Str("key", keyString(key)).
			Msg("put item failed")
		return errors.NewStoreWriteError(s.schema.Name(), err)
	}

	s.log.Debug().
		Str("table", s.schema.Name()).
		Str("key", keyString(key)).
		Msg("item saved")
	return nil
}

// Read resolves the key patterns from the minimal attribute subset and
// returns the stored item, or ErrNotFound when the row does not exist.
func (s *ItemStore) Read(ctx context.Context, keyAttrs map[string]any) (*storagemodels.Item, error) {
	key, err := s.schema.ResolveKey(keyAttrs)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.schema.Name()),
		Key:       keyAV(key),
	})
	if err != nil {
		s.log.Error().Err(err).
			Str("table", s.schema.Name()).
			Str("key", keyString(key)).
			Msg("get item failed")
		return nil, errors.NewStoreReadError(s.schema.Name(), err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(s.schema.Name(), keyString(key))
	}

	return s.itemFromRaw(out.Item)
}

// Delete removes the row under the resolved key. Deleting an absent row is
// not an error, matching the underlying DeleteItem semantics.
func (s *ItemStore) Delete(ctx context.Context, keyAttrs map[string]any) error {
	key, err := s.schema.ResolveKey(keyAttrs)
	if err != nil {
		return err
	}

	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.schema.Name()),
		Key:       keyAV(key),
	}); err != nil {
		s.log.Error().Err(err).
			Str("table", s.schema.Name()).
			Str("key", keyString(key)).
			Msg("delete item failed")
		return errors.NewStoreWriteError(s.schema.Name(), err)
	}
	return nil
}

// itemFromRaw converts a raw DynamoDB item into a schema-bound Item. Key
// attributes stay in the attribute map alongside the caller's data.
func (s *ItemStore) itemFromRaw(raw map[string]types.AttributeValue) (*storagemodels.Item, error) {
	attrs := make(map[string]any, len(raw))
	if err := attributevalue.UnmarshalMap(raw, &attrs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return storagemodels.FromAttributes(s.schema, attrs), nil
}

func keyAV(key map[string]string) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(key))
	for name, value := range key {
		out[name] = &types.AttributeValueMemberS{Value: value}
	}
	return out
}

func keyString(key map[string]string) string {
	if sk, ok := key[schema.KeyAttrSort]; ok {
		return key[schema.KeyAttrPartition] + "|" + sk
	}
	return key[schema.KeyAttrPartition]
}
