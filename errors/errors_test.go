/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingAttributeError(t *testing.T) {
	err := NewMissingAttributeError("USER#{owner}#STORY#{story_id}", "story_id")

	// Test error message
	expected := `pattern "USER#{owner}#STORY#{story_id}" references attribute "story_id" which was not supplied`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrMissingAttribute) {
		t.Error("MissingAttributeError should match ErrMissingAttribute")
	}

	// Test helper function
	if !IsMissingAttribute(err) {
		t.Error("IsMissingAttribute should return true for MissingAttributeError")
	}
}

func TestMalformedTemplateError(t *testing.T) {
	err := NewMalformedTemplateError("USER#{owner", "unterminated placeholder")

	expected := `template "USER#{owner" is malformed: unterminated placeholder`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrMalformedTemplate) {
		t.Error("MalformedTemplateError should match ErrMalformedTemplate")
	}

	if !IsMalformedTemplate(err) {
		t.Error("IsMalformedTemplate should return true for MalformedTemplateError")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("StoryTable", "USER#johndoe#STORY#1234")

	// Test error message
	expected := `no item in table "StoryTable" for key "USER#johndoe#STORY#1234"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("StoryTable", "USER#johndoe#STORY#1234")

	expected := `item in table "StoryTable" with key "USER#johndoe#STORY#1234" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestStoreErrors(t *testing.T) {
	cause := errors.New("connection reset")

	writeErr := NewStoreWriteError("StoryTable", cause)
	if !errors.Is(writeErr, ErrStoreWrite) {
		t.Error("StoreWriteError should match ErrStoreWrite")
	}
	if !errors.Is(writeErr, cause) {
		t.Error("StoreWriteError should unwrap to the underlying client error")
	}
	if !IsStoreWrite(writeErr) {
		t.Error("IsStoreWrite should return true for StoreWriteError")
	}

	readErr := NewStoreReadError("StoryTable", cause)
	if !errors.Is(readErr, ErrStoreRead) {
		t.Error("StoreReadError should match ErrStoreRead")
	}
	if !errors.Is(readErr, cause) {
		t.Error("StoreReadError should unwrap to the underlying client error")
	}
	if !IsStoreRead(readErr) {
		t.Error("IsStoreRead should return true for StoreReadError")
	}

	// Write and read sentinels must not cross-match
	if IsStoreRead(writeErr) || IsStoreWrite(readErr) {
		t.Error("StoreWriteError and StoreReadError should not match each other")
	}
}

func TestSchemaError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "tableName",
			message:  "must not be empty",
			expected: `invalid schema field "tableName": must not be empty`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "partition key pattern is required",
			expected: "invalid schema: partition key pattern is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSchemaError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidSchema) {
				t.Error("SchemaError should match ErrInvalidSchema")
			}

			if !IsInvalidSchema(err) {
				t.Error("IsInvalidSchema should return true for SchemaError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewMissingAttributeError("ITEM#{item_id}", "item_id")
	wrapped := fmt.Errorf("resolving partition key: %w", original)

	if !errors.Is(wrapped, ErrMissingAttribute) {
		t.Error("Wrapped MissingAttributeError should still match ErrMissingAttribute")
	}

	var target *MissingAttributeError
	if !errors.As(wrapped, &target) {
		t.Error("Wrapped error should unwrap to *MissingAttributeError")
	}
	if target.Attribute != "item_id" {
		t.Errorf("Expected attribute %q, got %q", "item_id", target.Attribute)
	}
}
