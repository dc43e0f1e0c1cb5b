// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import "strings"

// stripCompanionKeys removes annotation keys matching the prefix/suffix
// conventions, and the summary keyword, from a schema and its sub-schemas.
// The input schema is never modified.
func stripCompanionKeys(schema *Schema, conventions [][2]string) *Schema {
	if schema == nil {
		return nil
	}

	out := NewSchema()
	for key, value := range schema.All() {
		if key == summaryKeyword || isCompanionKey(key, conventions) {
			continue
		}

		out.Set(key, stripCompanionValue(value, conventions))
	}

	return out
}

// stripCompanionValue recurses into nested mappings and sequences.
func stripCompanionValue(value any, conventions [][2]string) any {
	switch typed := value.(type) {
	case *Schema:
		return stripCompanionKeys(typed, conventions)
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, stripCompanionValue(item, conventions))
		}

		return out
	default:
		return typed
	}
}

// isCompanionKey reports whether key addresses a known keyword through one of
// the prefix/suffix conventions.
func isCompanionKey(key string, conventions [][2]string) bool {
	for _, convention := range conventions {
		prefix, suffix := convention[0], convention[1]
		if prefix == "" && suffix == "" {
			continue
		}

		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, suffix) {
			continue
		}

		base := strings.TrimSuffix(strings.TrimPrefix(key, prefix), suffix)
		if base == key || base == "" {
			continue
		}

		if _, known := knownSchemaKeywords[base]; known {
			return true
		}
	}

	return false
}
