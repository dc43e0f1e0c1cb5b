// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"strconv"
	"strings"
)

// resolveLocalPointer resolves a "#/..." JSON pointer reference against the
// document root. "#" alone returns the root itself.
func resolveLocalPointer(root *Schema, ref string) (any, error) {
	ref = strings.TrimSpace(ref)
	if ref == "#" {
		return root, nil
	}

	if !strings.HasPrefix(ref, "#/") {
		return nil, fmt.Errorf("%w: %q is not a local pointer", ErrUnresolvedRef, ref)
	}

	var current any = root
	for _, token := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		token = decodePointerToken(token)

		switch typed := current.(type) {
		case *Schema:
			next, ok := typed.Get(token)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnresolvedRef, ref)
			}

			current = next
		case []any:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(typed) {
				return nil, fmt.Errorf("%w: %q", ErrUnresolvedRef, ref)
			}

			current = typed[index]
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedRef, ref)
		}
	}

	return current, nil
}

// decodePointerToken unescapes one JSON pointer token.
func decodePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// childSchema coerces one raw value into a schema node.
func childSchema(value any) (*Schema, bool) {
	typed, ok := value.(*Schema)
	return typed, ok && typed != nil
}
