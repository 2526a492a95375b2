/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/suparena/dynawrap/schema"
)

// Item is one table row: a reference to its TableSchema plus a mutable
// attribute map. The attribute map is freely mutable until the item is
// saved; the schema reference never changes.
type Item struct {
	schema *schema.TableSchema
	attrs  map[string]any
}

// NewItem creates an empty item bound to the given schema.
func NewItem(s *schema.TableSchema) *Item {
	return &Item{schema: s, attrs: make(map[string]any)}
}

// FromAttributes creates an item bound to the given schema with a copy of
// the supplied attributes.
func FromAttributes(s *schema.TableSchema, attrs map[string]any) *Item {
	it := NewItem(s)
	it.Merge(attrs)
	return it
}

// Schema returns the item's table schema.
func (it *Item) Schema() *schema.TableSchema { return it.schema }

// Set stores one attribute value.
func (it *Item) Set(name string, value any) {
	it.attrs[name] = value
}

// Get returns an attribute value and whether it is present.
func (it *Item) Get(name string) (any, bool) {
	v, ok := it.attrs[name]
	return v, ok
}

// GetString returns an attribute as a string when present and string-typed.
func (it *Item) GetString(name string) (string, bool) {
	v, ok := it.attrs[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Has reports whether an attribute is present.
func (it *Item) Has(name string) bool {
	_, ok := it.attrs[name]
	return ok
}

// Merge copies the supplied attributes into the item, replacing any
// existing values for the same names.
func (it *Item) Merge(attrs map[string]any) {
	for k, v := range attrs {
		it.attrs[k] = v
	}
}

// Attributes returns a copy of the attribute map.
func (it *Item) Attributes() map[string]any {
	out := make(map[string]any, len(it.attrs))
	for k, v := range it.attrs {
		out[k] = v
	}
	return out
}

// Key resolves the declared key patterns from the current attributes.
func (it *Item) Key() (map[string]string, error) {
	return it.schema.ResolveKey(it.attrs)
}

// As decodes the item's attributes into a value of type T using DynamoDB
// attribute marshaling rules.
func As[T any](it *Item) (*T, error) {
	av, err := attributevalue.MarshalMap(it.attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item attributes: %w", err)
	}
	out := new(T)
	if err := attributevalue.UnmarshalMap(av, out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item into %T: %w", out, err)
	}
	return out, nil
}

// ItemFrom builds an item whose attributes are the DynamoDB attribute
// representation of the supplied entity.
func ItemFrom[T any](s *schema.TableSchema, entity T) (*Item, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	attrs := make(map[string]any, len(av))
	if err := attributevalue.UnmarshalMap(av, &attrs); err != nil {
		return nil, fmt.Errorf("failed to convert entity attributes: %w", err)
	}
	return FromAttributes(s, attrs), nil
}
