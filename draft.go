// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import "strings"

// Draft identifies a JSON Schema specification revision.
type Draft string

// Recognized draft revisions.
const (
	Draft202012 Draft = "2020-12"
	Draft201909 Draft = "2019-09"
	Draft07     Draft = "draft-07"
	Draft06     Draft = "draft-06"
	Draft04     Draft = "draft-04"
)

// knownDrafts maps normalized $schema values to draft revisions.
var knownDrafts = map[string]Draft{
	"json-schema.org/draft/2020-12/schema": Draft202012,
	"json-schema.org/draft/2019-09/schema": Draft201909,
	"json-schema.org/draft-07/schema":      Draft07,
	"json-schema.org/draft-06/schema":      Draft06,
	"json-schema.org/draft-04/schema":      Draft04,
}

// DetectDraft reads the $schema keyword and reports the schema's revision.
//
// A missing $schema defaults to 2020-12 with ok true; an unrecognized value
// returns ok false and the caller decides how loudly to proceed.
func DetectDraft(schema *Schema) (Draft, bool) {
	value := strings.TrimSpace(schema.Str("$schema"))
	if value == "" {
		return Draft202012, true
	}

	if draft, ok := knownDrafts[normalizeDraftURL(value)]; ok {
		return draft, true
	}

	return Draft202012, false
}

// normalizeDraftURL strips the scheme and trailing fragment from a $schema URL.
func normalizeDraftURL(value string) string {
	value = strings.TrimPrefix(value, "https://")
	value = strings.TrimPrefix(value, "http://")
	value = strings.TrimSuffix(value, "#")

	return strings.TrimSuffix(value, "/")
}
