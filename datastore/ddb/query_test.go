/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dynawrap/errors"
	"github.com/suparena/dynawrap/schema"
)

func metricsSchema(t *testing.T) *schema.TableSchema {
	t.Helper()
	s, err := schema.New("metrics", "USER#{username}", "DATE#{date}#EXECUTION#{execution_id}")
	require.NoError(t, err)
	return s
}

func seedMetrics(t *testing.T, store *ItemStore) {
	t.Helper()
	ctx := context.Background()
	rows := []map[string]any{
		{"username": "kei", "date": "2025-05-04", "execution_id": "e-1", "duration": 12},
		{"username": "kei", "date": "2025-05-04", "execution_id": "e-2", "duration": 30},
		{"username": "kei", "date": "2025-05-05", "execution_id": "e-3", "duration": 7},
		{"username": "ana", "date": "2025-05-04", "execution_id": "e-4", "duration": 99},
	}
	for _, row := range rows {
		require.NoError(t, store.Save(ctx, row))
	}
}

func TestQueryPrefixBySortPrefix(t *testing.T) {
	client := newFakeDynamoClient()
	store := NewItemStore(client, metricsSchema(t))
	seedMetrics(t, store)

	items, err := store.QueryPrefix(context.Background(), map[string]any{
		"username": "kei",
		"date":     "2025-05-04",
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, item := range items {
		date, _ := item.GetString("date")
		assert.Equal(t, "2025-05-04", date)
	}
}

func TestQueryPrefixWholePartition(t *testing.T) {
	client := newFakeDynamoClient()
	store := NewItemStore(client, metricsSchema(t))
	seedMetrics(t, store)

	items, err := store.QueryPrefix(context.Background(), map[string]any{"username": "kei"})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestQueryPrefixFollowsPagination(t *testing.T) {
	client := newFakeDynamoClient()
	client.pageSize = 1
	store := NewItemStore(client, metricsSchema(t))
	seedMetrics(t, store)

	items, err := store.QueryPrefix(context.Background(), map[string]any{"username": "kei"})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestQueryPrefixEmptyResult(t *testing.T) {
	client := newFakeDynamoClient()
	store := NewItemStore(client, metricsSchema(t))
	seedMetrics(t, store)

	items, err := store.QueryPrefix(context.Background(), map[string]any{"username": "nobody"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestQueryPrefixMissingPartitionAttribute(t *testing.T) {
	client := newFakeDynamoClient()
	store := NewItemStore(client, metricsSchema(t))

	_, err := store.QueryPrefix(context.Background(), map[string]any{"date": "2025-05-04"})
	require.Error(t, err)
	assert.True(t, errors.IsMissingAttribute(err))
}

func TestQueryPrefixWrapsClientError(t *testing.T) {
	cause := stderrors.New("throttled")
	client := newFakeDynamoClient()
	client.queryErr = cause
	store := NewItemStore(client, metricsSchema(t))

	_, err := store.QueryPrefix(context.Background(), map[string]any{"username": "kei"})
	require.Error(t, err)
	assert.True(t, errors.IsStoreRead(err))
	assert.True(t, stderrors.Is(err, cause))
}
