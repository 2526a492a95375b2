/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the
// datastore.ItemStore interface for testing.
package mock

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/suparena/dynawrap/errors"
	"github.com/suparena/dynawrap/schema"
	"github.com/suparena/dynawrap/storagemodels"
)

// ItemStore is a mock implementation of datastore.ItemStore backed by a map.
// It resolves keys with the same schema machinery as the DynamoDB store, so
// tests exercise the real key-pattern behavior against fake storage.
type ItemStore struct {
	mu      sync.RWMutex
	schema  *schema.TableSchema
	rows    map[string]map[string]any
	sortKey map[string]string

	saveError  error
	readError  error
	queryError error
}

// New creates a mock ItemStore for the given schema.
func New(s *schema.TableSchema) *ItemStore {
	return &ItemStore{
		schema:  s,
		rows:    make(map[string]map[string]any),
		sortKey: make(map[string]string),
	}
}

// WithSaveError makes Save, SaveIfNotExists, Update and Delete return err.
func (m *ItemStore) WithSaveError(err error) *ItemStore {
	m.saveError = err
	return m
}

// WithReadError makes Read return err.
func (m *ItemStore) WithReadError(err error) *ItemStore {
	m.readError = err
	return m
}

// WithQueryError makes QueryPrefix return err.
func (m *ItemStore) WithQueryError(err error) *ItemStore {
	m.queryError = err
	return m
}

// Schema returns the table schema this store operates on.
func (m *ItemStore) Schema() *schema.TableSchema { return m.schema }

// Len reports the number of stored rows.
func (m *ItemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}

func composite(key map[string]string) string {
	return key[schema.KeyAttrPartition] + "\x00" + key[schema.KeyAttrSort]
}

// Save resolves the key patterns and stores a copy of the attribute map,
// overwriting any row under the same resolved key.
func (m *ItemStore) Save(ctx context.Context, attrs map[string]any) error {
	return m.put(attrs, false)
}

// SaveIfNotExists is Save that fails with ErrAlreadyExists when a row with
// the same resolved key is already present.
func (m *ItemStore) SaveIfNotExists(ctx context.Context, attrs map[string]any) error {
	return m.put(attrs, true)
}

// Update is a full overwrite through Save.
func (m *ItemStore) Update(ctx context.Context, attrs map[string]any) error {
	return m.Save(ctx, attrs)
}

func (m *ItemStore) put(attrs map[string]any, mustNotExist bool) error {
	if m.saveError != nil {
		return m.saveError
	}

	key, err := m.schema.ResolveKey(attrs)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ck := composite(key)
	if mustNotExist {
		if _, exists := m.rows[ck]; exists {
			return errors.NewAlreadyExistsError(m.schema.Name(), key[schema.KeyAttrPartition])
		}
	}

	row := make(map[string]any, len(attrs)+2)
	for k, v := range attrs {
		row[k] = v
	}
	row[schema.KeyAttrPartition] = key[schema.KeyAttrPartition]
	if m.schema.HasSortKey() {
		row[schema.KeyAttrSort] = key[schema.KeyAttrSort]
	}
	m.rows[ck] = row
	m.sortKey[ck] = key[schema.KeyAttrSort]
	return nil
}

// Read returns the stored item for the resolved key, or ErrNotFound.
func (m *ItemStore) Read(ctx context.Context, keyAttrs map[string]any) (*storagemodels.Item, error) {
	if m.readError != nil {
		return nil, m.readError
	}

	key, err := m.schema.ResolveKey(keyAttrs)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	row, exists := m.rows[composite(key)]
	if !exists {
		return nil, errors.NewNotFoundError(m.schema.Name(), key[schema.KeyAttrPartition])
	}
	return storagemodels.FromAttributes(m.schema, row), nil
}

// Delete removes the row under the resolved key. Deleting an absent row is
// not an error, matching DynamoDB semantics.
func (m *ItemStore) Delete(ctx context.Context, keyAttrs map[string]any) error {
	if m.saveError != nil {
		return m.saveError
	}

	key, err := m.schema.ResolveKey(keyAttrs)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ck := composite(key)
	delete(m.rows, ck)
	delete(m.sortKey, ck)
	return nil
}

// QueryPrefix returns rows in the resolved partition whose sort key begins
// with the longest resolvable prefix, ordered by sort key.
func (m *ItemStore) QueryPrefix(ctx context.Context, keyAttrs map[string]any) ([]*storagemodels.Item, error) {
	if m.queryError != nil {
		return nil, m.queryError
	}

	pk, skPrefix, err := m.schema.ResolveKeyPrefix(keyAttrs)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for ck := range m.rows {
		if !strings.HasPrefix(ck, pk+"\x00") {
			continue
		}
		if skPrefix != "" && !strings.HasPrefix(m.sortKey[ck], skPrefix) {
			continue
		}
		keys = append(keys, ck)
	}
	sort.Strings(keys)

	items := make([]*storagemodels.Item, 0, len(keys))
	for _, ck := range keys {
		items = append(items, storagemodels.FromAttributes(m.schema, m.rows[ck]))
	}
	return items, nil
}
