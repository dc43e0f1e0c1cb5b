// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"iter"
	"os"
	"strconv"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Schema is one JSON Schema node: a keyword mapping that preserves declared key order.
//
// Nested mappings decode to *Schema, sequences to []any, scalars to
// string/bool/int64/float64/nil. Nodes handed to the generator are never mutated.
type Schema struct {
	entries *sequencedmap.Map[string, any]
}

// NewSchema returns an empty schema node.
func NewSchema() *Schema {
	return &Schema{entries: sequencedmap.New[string, any]()}
}

// ParseSchema decodes JSON or YAML schema bytes into an ordered schema node.
func ParseSchema(data []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrDecodeSchema)
		}

		node = node.Content[0]
	}

	value, err := valueForYAMLNode(node)
	if err != nil {
		return nil, err
	}

	schema, ok := value.(*Schema)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrSchemaRootType, value)
	}

	return schema, nil
}

// ParseSchemaFile reads and decodes one schema document from disk.
func ParseSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSchemaFile, path, err)
	}

	return ParseSchema(data)
}

// valueForYAMLNode converts one decoded yaml node into a schema value tree.
func valueForYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return valueForYAMLNode(node.Alias)
	case yaml.MappingNode:
		schema := NewSchema()
		for index := 0; index+1 < len(node.Content); index += 2 {
			value, err := valueForYAMLNode(node.Content[index+1])
			if err != nil {
				return nil, err
			}

			schema.entries.Set(node.Content[index].Value, value)
		}

		return schema, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := valueForYAMLNode(item)
			if err != nil {
				return nil, err
			}

			out = append(out, value)
		}

		return out, nil
	case yaml.ScalarNode:
		return scalarForYAMLNode(node), nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml node kind %d", ErrDecodeSchema, node.Kind)
	}
}

// scalarForYAMLNode converts one scalar yaml node by resolved tag.
func scalarForYAMLNode(node *yaml.Node) any {
	switch node.Tag {
	case "!!null":
		return nil
	case "!!bool":
		value, err := strconv.ParseBool(node.Value)
		if err != nil {
			return node.Value
		}

		return value
	case "!!int":
		if value, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			return value
		}

		if value, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return value
		}

		return node.Value
	case "!!float":
		value, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return node.Value
		}

		return value
	default:
		return node.Value
	}
}

// Len returns the number of keywords on the node.
func (s *Schema) Len() int {
	if s == nil || s.entries == nil {
		return 0
	}

	return s.entries.Len()
}

// Get returns the raw keyword value and its presence flag.
func (s *Schema) Get(key string) (any, bool) {
	if s == nil || s.entries == nil {
		return nil, false
	}

	return s.entries.Get(key)
}

// Has reports whether the keyword is present on the node.
func (s *Schema) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set stores one keyword value; new keys append in declared order.
func (s *Schema) Set(key string, value any) {
	if s.entries == nil {
		s.entries = sequencedmap.New[string, any]()
	}

	s.entries.Set(key, value)
}

// Delete removes one keyword from the node.
func (s *Schema) Delete(key string) {
	if s == nil || s.entries == nil {
		return
	}

	s.entries.Delete(key)
}

// All iterates keyword/value pairs in declared order.
func (s *Schema) All() iter.Seq2[string, any] {
	if s == nil || s.entries == nil {
		return func(func(string, any) bool) {}
	}

	return s.entries.All()
}

// Keys returns keyword names in declared order.
func (s *Schema) Keys() []string {
	if s.Len() == 0 {
		return nil
	}

	out := make([]string, 0, s.Len())
	for key := range s.All() {
		out = append(out, key)
	}

	return out
}

// Str returns a string keyword value or empty string.
func (s *Schema) Str(key string) string {
	value, _ := s.Get(key)
	text, _ := value.(string)
	return text
}

// Bool returns a boolean keyword value and its presence-as-boolean flag.
func (s *Schema) Bool(key string) (bool, bool) {
	value, present := s.Get(key)
	if !present {
		return false, false
	}

	typed, ok := value.(bool)
	return typed, ok
}

// Int returns an integer keyword value and its presence-as-integer flag.
func (s *Schema) Int(key string) (int64, bool) {
	value, present := s.Get(key)
	if !present {
		return 0, false
	}

	typed, ok := value.(int64)
	return typed, ok
}

// List returns a sequence keyword value or nil.
func (s *Schema) List(key string) []any {
	value, _ := s.Get(key)
	typed, _ := value.([]any)
	return typed
}

// StrList returns string elements of a sequence keyword value.
func (s *Schema) StrList(key string) []string {
	items := s.List(key)
	if len(items) == 0 {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		text, ok := item.(string)
		if !ok {
			continue
		}

		out = append(out, text)
	}

	return out
}

// Child returns a nested schema node for the keyword or nil.
func (s *Schema) Child(key string) *Schema {
	value, _ := s.Get(key)
	child, _ := value.(*Schema)
	return child
}

// Clone returns a deep copy of the node.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	cloned, _ := cloneSchemaValue(s).(*Schema)
	return cloned
}

// cloneSchemaValue deep-copies one schema value tree.
func cloneSchemaValue(value any) any {
	switch typed := value.(type) {
	case *Schema:
		out := NewSchema()
		for key, item := range typed.All() {
			out.entries.Set(key, cloneSchemaValue(item))
		}

		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, cloneSchemaValue(item))
		}

		return out
	default:
		return typed
	}
}
