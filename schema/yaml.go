/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/dynawrap/errors"
)

// Definition is the root of a schema declaration file.
type Definition struct {
	Tables []TableDefinition `yaml:"tables" json:"tables"`
}

// TableDefinition is the YAML-facing declaration of one table schema.
type TableDefinition struct {
	Name                string `yaml:"name" json:"name"`
	PartitionKeyPattern string `yaml:"partitionKeyPattern" json:"partitionKeyPattern"`
	SortKeyPattern      string `yaml:"sortKeyPattern,omitempty" json:"sortKeyPattern,omitempty"`
}

// Parse decodes a schema declaration document and constructs the declared
// TableSchemas, validating every pattern template.
func Parse(data []byte) ([]*TableSchema, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}
	if len(def.Tables) == 0 {
		return nil, errors.NewSchemaError("tables", "schema document declares no tables")
	}

	schemas := make([]*TableSchema, 0, len(def.Tables))
	seen := map[string]bool{}
	for _, td := range def.Tables {
		if seen[td.Name] {
			return nil, errors.NewSchemaError("name", fmt.Sprintf("duplicate table %q", td.Name))
		}
		s, err := New(td.Name, td.PartitionKeyPattern, td.SortKeyPattern)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", td.Name, err)
		}
		seen[td.Name] = true
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// LoadFile reads and parses a schema declaration file.
func LoadFile(path string) ([]*TableSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}
