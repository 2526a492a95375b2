/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"

	"github.com/suparena/dynawrap/errors"
	"github.com/suparena/dynawrap/keypattern"
)

// Key attribute names used for every dynawrap table.
const (
	KeyAttrPartition = "PK"
	KeyAttrSort      = "SK"
)

// TableSchema pairs a table name with the access patterns that produce its
// primary key. A schema is declared once, is immutable afterwards and is
// shared read-only by every item of its kind, so it is safe for concurrent
// use.
type TableSchema struct {
	name      string
	partition *keypattern.AccessPattern
	sort      *keypattern.AccessPattern
}

// New builds a TableSchema from a table name and raw pattern templates.
// The sort key template may be empty for tables keyed by partition key only.
func New(name, pkTemplate, skTemplate string) (*TableSchema, error) {
	if name == "" {
		return nil, errors.NewSchemaError("tableName", "must not be empty")
	}
	if pkTemplate == "" {
		return nil, errors.NewSchemaError("partitionKeyPattern", "must not be empty")
	}

	pk, err := keypattern.New(name+"_pk", keypattern.RolePartition, pkTemplate)
	if err != nil {
		return nil, err
	}

	s := &TableSchema{name: name, partition: pk}
	if skTemplate != "" {
		sk, err := keypattern.New(name+"_sk", keypattern.RoleSort, skTemplate)
		if err != nil {
			return nil, err
		}
		s.sort = sk
	}
	return s, nil
}

// MustNew is like New but panics on an invalid declaration. It is intended
// for schema declarations at application startup.
func MustNew(name, pkTemplate, skTemplate string) *TableSchema {
	s, err := New(name, pkTemplate, skTemplate)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return s
}

// Name returns the table name.
func (s *TableSchema) Name() string { return s.name }

// PartitionKey returns the partition key pattern.
func (s *TableSchema) PartitionKey() *keypattern.AccessPattern { return s.partition }

// SortKey returns the sort key pattern, or nil for partition-only tables.
func (s *TableSchema) SortKey() *keypattern.AccessPattern { return s.sort }

// HasSortKey reports whether the table declares a sort key pattern.
func (s *TableSchema) HasSortKey() bool { return s.sort != nil }

// RequiredAttributes returns the placeholder names referenced by the key
// patterns, partition key variables first, without duplicates.
func (s *TableSchema) RequiredAttributes() []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range s.partition.Variables() {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	if s.sort != nil {
		for _, v := range s.sort.Variables() {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// ResolveKey substitutes the supplied values into every declared pattern and
// returns the concrete key map ("PK", and "SK" when a sort pattern exists).
func (s *TableSchema) ResolveKey(values map[string]any) (map[string]string, error) {
	pk, err := s.partition.Resolve(values)
	if err != nil {
		return nil, err
	}
	key := map[string]string{KeyAttrPartition: pk}
	if s.sort != nil {
		sk, err := s.sort.Resolve(values)
		if err != nil {
			return nil, err
		}
		key[KeyAttrSort] = sk
	}
	return key, nil
}

// ResolveKeyPrefix resolves the partition key fully and the sort key as far
// as the supplied values allow. The returned prefix is empty for tables
// without a sort pattern.
func (s *TableSchema) ResolveKeyPrefix(values map[string]any) (pk, skPrefix string, err error) {
	pk, err = s.partition.Resolve(values)
	if err != nil {
		return "", "", err
	}
	if s.sort != nil {
		skPrefix = s.sort.ResolvePrefix(values)
	}
	return pk, skPrefix, nil
}

// MatchesKey reports whether concrete PK/SK values fit this schema's
// pattern skeletons. Used to discriminate row kinds in shared tables and
// stream records.
func (s *TableSchema) MatchesKey(pk, sk string) bool {
	if !s.partition.Match(pk) {
		return false
	}
	if s.sort == nil {
		return sk == ""
	}
	return s.sort.Match(sk)
}
