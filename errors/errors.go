/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrMissingAttribute is returned when a key pattern references a
	// placeholder that is absent from the supplied attribute map
	ErrMissingAttribute = errors.New("missing attribute for key pattern")

	// ErrMalformedTemplate is returned when a key pattern contains
	// unbalanced or empty placeholder syntax
	ErrMalformedTemplate = errors.New("malformed key pattern template")

	// ErrNotFound is returned when a read misses
	ErrNotFound = errors.New("item not found")

	// ErrAlreadyExists is returned when a conditional save finds an
	// existing row under the same resolved key
	ErrAlreadyExists = errors.New("item already exists")

	// ErrStoreWrite wraps any store client failure during a write
	ErrStoreWrite = errors.New("store write failed")

	// ErrStoreRead wraps any store client failure during a read
	ErrStoreRead = errors.New("store read failed")

	// ErrInvalidSchema is returned when a table schema declaration is invalid
	ErrInvalidSchema = errors.New("invalid table schema")
)

// MissingAttributeError reports an unresolved placeholder in a key pattern.
type MissingAttributeError struct {
	Pattern   string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("pattern %q references attribute %q which was not supplied", e.Pattern, e.Attribute)
}

func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// MalformedTemplateError reports invalid placeholder syntax in a template.
type MalformedTemplateError struct {
	Template string
	Reason   string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("template %q is malformed: %s", e.Template, e.Reason)
}

func (e *MalformedTemplateError) Is(target error) bool {
	return target == ErrMalformedTemplate
}

// NotFoundError represents a read miss for a resolved key.
type NotFoundError struct {
	Table string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no item in table %q for key %q", e.Table, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents a conditional save that found an existing row.
type AlreadyExistsError struct {
	Table string
	Key   string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("item in table %q with key %q already exists", e.Table, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// StoreWriteError wraps an underlying client failure during a put.
type StoreWriteError struct {
	Table string
	Err   error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write to table %q failed: %v", e.Table, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

func (e *StoreWriteError) Is(target error) bool {
	return target == ErrStoreWrite
}

// StoreReadError wraps an underlying client failure during a get or query.
type StoreReadError struct {
	Table string
	Err   error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("read from table %q failed: %v", e.Table, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

func (e *StoreReadError) Is(target error) bool {
	return target == ErrStoreRead
}

// SchemaError represents an invalid table schema declaration.
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid schema field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid schema: %s", e.Message)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// Helper functions for creating errors

// NewMissingAttributeError creates a new MissingAttributeError
func NewMissingAttributeError(pattern, attribute string) error {
	return &MissingAttributeError{Pattern: pattern, Attribute: attribute}
}

// NewMalformedTemplateError creates a new MalformedTemplateError
func NewMalformedTemplateError(template, reason string) error {
	return &MalformedTemplateError{Template: template, Reason: reason}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(table, key string) error {
	return &NotFoundError{Table: table, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(table, key string) error {
	return &AlreadyExistsError{Table: table, Key: key}
}

// NewStoreWriteError wraps a client write failure
func NewStoreWriteError(table string, err error) error {
	return &StoreWriteError{Table: table, Err: err}
}

// NewStoreReadError wraps a client read failure
func NewStoreReadError(table string, err error) error {
	return &StoreReadError{Table: table, Err: err}
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(field, message string) error {
	return &SchemaError{Field: field, Message: message}
}

// IsMissingAttribute checks if an error is a missing attribute error
func IsMissingAttribute(err error) bool {
	return errors.Is(err, ErrMissingAttribute)
}

// IsMalformedTemplate checks if an error is a malformed template error
func IsMalformedTemplate(err error) bool {
	return errors.Is(err, ErrMalformedTemplate)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsStoreWrite checks if an error is a wrapped store write failure
func IsStoreWrite(err error) bool {
	return errors.Is(err, ErrStoreWrite)
}

// IsStoreRead checks if an error is a wrapped store read failure
func IsStoreRead(err error) bool {
	return errors.Is(err, ErrStoreRead)
}

// IsInvalidSchema checks if an error is an invalid schema error
func IsInvalidSchema(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}
