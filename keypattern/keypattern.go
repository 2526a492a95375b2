/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keypattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suparena/dynawrap/errors"
)

// Role identifies which part of a table's primary key a pattern produces.
type Role string

const (
	// RolePartition marks a pattern that produces the partition (hash) key.
	RolePartition Role = "partition"

	// RoleSort marks a pattern that produces the sort (range) key.
	RoleSort Role = "sort"
)

// segment is one parsed unit of a template: a literal run optionally
// followed by a single placeholder. A segment with an empty name is a
// trailing literal.
type segment struct {
	literal string
	name    string
}

// AccessPattern is a named key template such as "USER#{owner}#STORY#{story_id}".
// Patterns are parsed and validated at construction and immutable afterwards,
// so a single pattern is safe for concurrent use.
type AccessPattern struct {
	name     string
	role     Role
	raw      string
	segments []segment
	vars     []string
}

// New parses the template and returns an immutable AccessPattern.
// It returns ErrMalformedTemplate when the template contains unbalanced
// or empty placeholder syntax, and ErrInvalidSchema for an unknown role.
func New(name string, role Role, template string) (*AccessPattern, error) {
	if role != RolePartition && role != RoleSort {
		return nil, errors.NewSchemaError("role", fmt.Sprintf("unknown key role %q", role))
	}
	if template == "" {
		return nil, errors.NewMalformedTemplateError(template, "template must not be empty")
	}

	segs, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}

	p := &AccessPattern{
		name:     name,
		role:     role,
		raw:      template,
		segments: segs,
	}
	for _, s := range segs {
		if s.name != "" {
			p.vars = append(p.vars, s.name)
		}
	}
	return p, nil
}

// MustNew is like New but panics on a malformed template. It is intended
// for pattern declarations at package or application startup.
func MustNew(name string, role Role, template string) *AccessPattern {
	p, err := New(name, role, template)
	if err != nil {
		panic(fmt.Sprintf("keypattern: %v", err))
	}
	return p
}

func parseTemplate(template string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder

	i := 0
	for i < len(template) {
		switch template[i] {
		case '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, errors.NewMalformedTemplateError(template, "unterminated placeholder")
			}
			name := template[i+1 : i+1+end]
			if name == "" {
				return nil, errors.NewMalformedTemplateError(template, "empty placeholder")
			}
			if strings.ContainsRune(name, '{') {
				return nil, errors.NewMalformedTemplateError(template, "nested placeholder")
			}
			segs = append(segs, segment{literal: lit.String(), name: name})
			lit.Reset()
			i += end + 2
		case '}':
			return nil, errors.NewMalformedTemplateError(template, "unbalanced '}'")
		default:
			lit.WriteByte(template[i])
			i++
		}
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{literal: lit.String()})
	}
	return segs, nil
}

// Name returns the pattern's name.
func (p *AccessPattern) Name() string { return p.name }

// Role returns the key role this pattern produces.
func (p *AccessPattern) Role() Role { return p.role }

// Template returns the raw template string.
func (p *AccessPattern) Template() string { return p.raw }

// Variables returns the placeholder names in template order.
func (p *AccessPattern) Variables() []string {
	out := make([]string, len(p.vars))
	copy(out, p.vars)
	return out
}

// Resolve substitutes every placeholder with the string form of the
// corresponding value, preserving literal segments unchanged. Values must be
// primitive-representable (string, bool, integer, float or fmt.Stringer);
// an absent or non-representable value yields ErrMissingAttribute.
func (p *AccessPattern) Resolve(values map[string]any) (string, error) {
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteString(seg.literal)
		if seg.name == "" {
			continue
		}
		v, ok := values[seg.name]
		if !ok {
			return "", errors.NewMissingAttributeError(p.raw, seg.name)
		}
		s, ok := formatValue(v)
		if !ok {
			return "", errors.NewMissingAttributeError(p.raw, seg.name)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// ResolvePrefix substitutes placeholders left to right and stops at the
// first one that cannot be resolved, returning the literal-plus-resolved
// prefix. Useful for begins_with style key conditions on partially known
// sort keys.
func (p *AccessPattern) ResolvePrefix(values map[string]any) string {
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteString(seg.literal)
		if seg.name == "" {
			continue
		}
		v, ok := values[seg.name]
		if !ok {
			break
		}
		s, ok := formatValue(v)
		if !ok {
			break
		}
		b.WriteString(s)
	}
	return b.String()
}

// Match reports whether a concrete key string fits the pattern's literal
// skeleton. Placeholders match any run of characters, including an empty one.
func (p *AccessPattern) Match(key string) bool {
	rest := key
	for i, seg := range p.segments {
		if seg.name == "" {
			// trailing literal; a literal-only segment is always last
			if i == 0 {
				return rest == seg.literal
			}
			return strings.HasSuffix(rest, seg.literal)
		}
		if seg.literal != "" {
			if i == 0 {
				if !strings.HasPrefix(rest, seg.literal) {
					return false
				}
				rest = rest[len(seg.literal):]
			} else {
				idx := strings.Index(rest, seg.literal)
				if idx < 0 {
					return false
				}
				rest = rest[idx+len(seg.literal):]
			}
		}
		if i == len(p.segments)-1 {
			// trailing placeholder consumes the remainder
			return true
		}
	}
	return key == ""
}

// formatValue converts a primitive-representable value to its key string form.
func formatValue(v any) (string, bool) {
	switch tv := v.(type) {
	case string:
		return tv, true
	case fmt.Stringer:
		return tv.String(), true
	case bool:
		return strconv.FormatBool(tv), true
	case int:
		return strconv.Itoa(tv), true
	case int8:
		return strconv.FormatInt(int64(tv), 10), true
	case int16:
		return strconv.FormatInt(int64(tv), 10), true
	case int32:
		return strconv.FormatInt(int64(tv), 10), true
	case int64:
		return strconv.FormatInt(tv, 10), true
	case uint:
		return strconv.FormatUint(uint64(tv), 10), true
	case uint8:
		return strconv.FormatUint(uint64(tv), 10), true
	case uint16:
		return strconv.FormatUint(uint64(tv), 10), true
	case uint32:
		return strconv.FormatUint(uint64(tv), 10), true
	case uint64:
		return strconv.FormatUint(tv, 10), true
	case float32:
		return strconv.FormatFloat(float64(tv), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(tv, 'g', -1, 64), true
	default:
		return "", false
	}
}
