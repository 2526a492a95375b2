/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynawrap

import (
	"fmt"
	"sync"

	"github.com/suparena/dynawrap/datastore"
)

// Storage manages a collection of ItemStore instances keyed by name, so an
// application can wire all its table stores once and hand a single value
// around.
type Storage interface {
	// RegisterStore registers an ItemStore under a given key (for example,
	// "stories" or "signups").
	RegisterStore(key string, store datastore.ItemStore) error
	// Store retrieves the registered ItemStore for a given key.
	Store(key string) (datastore.ItemStore, error)
	// Keys returns the registered store keys.
	Keys() []string
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu     sync.RWMutex
	stores map[string]datastore.ItemStore
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		stores: make(map[string]datastore.ItemStore),
	}
}

// RegisterStore stores the provided ItemStore under the given key.
func (sm *storageManager) RegisterStore(key string, store datastore.ItemStore) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("store with key %q already registered", key)
	}
	sm.stores[key] = store
	return nil
}

// Store retrieves the ItemStore associated with the given key.
func (sm *storageManager) Store(key string) (datastore.ItemStore, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	store, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("store with key %q not found", key)
	}
	return store, nil
}

// Keys returns the registered store keys in no particular order.
func (sm *storageManager) Keys() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := make([]string, 0, len(sm.stores))
	for key := range sm.stores {
		keys = append(keys, key)
	}
	return keys
}
