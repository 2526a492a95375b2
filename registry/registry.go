/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/dynawrap/schema"
)

// SchemaRegistry associates Go types and table names with their declared
// TableSchemas. Registries are explicit instances constructed at startup
// and passed by reference; there is no package-level registry.
type SchemaRegistry struct {
	mu      sync.RWMutex
	byType  map[reflect.Type]*schema.TableSchema
	byName  map[string]*schema.TableSchema
	ordered []*schema.TableSchema
}

// New creates an empty SchemaRegistry.
func New() *SchemaRegistry {
	return &SchemaRegistry{
		byType: make(map[reflect.Type]*schema.TableSchema),
		byName: make(map[string]*schema.TableSchema),
	}
}

// Register associates a Go type T with a table schema and indexes the
// schema under its table name. Registering the same type or table name
// twice is an error.
func Register[T any](r *SchemaRegistry, s *schema.TableSchema) error {
	var zero T
	t := reflect.TypeOf(zero)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byType[t]; exists {
		return fmt.Errorf("schema for type %v already registered", t)
	}
	if _, exists := r.byName[s.Name()]; exists {
		return fmt.Errorf("schema for table %q already registered", s.Name())
	}

	r.byType[t] = s
	r.byName[s.Name()] = s
	r.ordered = append(r.ordered, s)
	return nil
}

// SchemaFor retrieves the schema registered for type T, if any.
func SchemaFor[T any](r *SchemaRegistry) (*schema.TableSchema, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byType[t]
	return s, ok
}

// ByName retrieves a schema by its table name.
func (r *SchemaRegistry) ByName(name string) (*schema.TableSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byName[name]
	return s, ok
}

// Match returns the first registered schema whose key patterns fit the
// supplied concrete PK/SK values, in registration order.
func (r *SchemaRegistry) Match(pk, sk string) (*schema.TableSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.ordered {
		if s.MatchesKey(pk, sk) {
			return s, true
		}
	}
	return nil, false
}

// All returns the registered schemas in registration order.
func (r *SchemaRegistry) All() []*schema.TableSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*schema.TableSchema, len(r.ordered))
	copy(out, r.ordered)
	return out
}
