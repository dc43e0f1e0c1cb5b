// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"strings"
)

// Registry resolves schema identifiers referenced through $ref.
type Registry interface {
	// Lookup returns the schema registered under id, or an error wrapping
	// ErrUnresolvedRef when no schema carries that id.
	Lookup(id string) (*Schema, error)
}

// MemoryRegistry is an in-memory Registry that remembers registration order.
type MemoryRegistry struct {
	byID map[string]*Schema
	ids  []string
}

// NewMemoryRegistry returns an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{byID: make(map[string]*Schema)}
}

// Add registers schema under the identifier in its $id keyword.
func (r *MemoryRegistry) Add(schema *Schema) error {
	id := strings.TrimSpace(schema.Str("$id"))
	if id == "" {
		return ErrMissingID
	}

	return r.AddWithID(id, schema)
}

// AddWithID registers schema under an explicit identifier.
func (r *MemoryRegistry) AddWithID(id string, schema *Schema) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingID
	}

	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}

	if r.byID == nil {
		r.byID = make(map[string]*Schema)
	}

	r.byID[id] = schema
	r.ids = append(r.ids, id)

	return nil
}

// Lookup returns the schema registered under id.
func (r *MemoryRegistry) Lookup(id string) (*Schema, error) {
	schema, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedRef, id)
	}

	return schema, nil
}

// IDs returns the registered identifiers in registration order.
func (r *MemoryRegistry) IDs() []string {
	return append([]string(nil), r.ids...)
}
