// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"testing"

	"github.com/schemark/schemark/docmodel"
)

func TestGeneratePropertiesDeclaredOrder(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `{
		"properties": {
			"zeta": {"type": "string", "description": "Last name.\n\nIgnored rest."},
			"alpha": {"type": "integer", "title": "A number"}
		}
	}`)

	generator := NewGenerator(Config{})
	list, err := generator.GenerateProperties(schema, "$", "doc", "$")
	if err != nil {
		t.Fatalf("GenerateProperties: %v", err)
	}

	if len(list.Entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(list.Entries))
	}

	first := rawMarkdown(t, list.Entries[0].Term)
	if first != "[`zeta`](#doc-properties-zeta)" {
		t.Fatalf("first term = %q, declared order must hold", first)
	}

	second := rawMarkdown(t, list.Entries[1].Term)
	if second != "[`alpha`](#doc-properties-alpha)" {
		t.Fatalf("second term = %q", second)
	}

	summary, ok := list.Entries[0].Details[0].(*docmodel.Paragraph)
	if !ok {
		t.Fatalf("first details head type = %T, want *docmodel.Paragraph", list.Entries[0].Details[0])
	}

	if summary.Text != "Last name." {
		t.Fatalf("summary = %q, want the first description paragraph", summary.Text)
	}

	if got := titleSummary(t, list.Entries[1].Details); got != "A number" {
		t.Fatalf("second summary = %q, want the title fallback", got)
	}
}

func TestGeneratePropertiesCondensedBadges(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `{
		"properties": {"name": {"type": "string", "minLength": 1}}
	}`)

	generator := NewGenerator(Config{})
	list, err := generator.GenerateProperties(schema, "$", "doc", "$")
	if err != nil {
		t.Fatalf("GenerateProperties: %v", err)
	}

	strip := detailsBadges(t, list.Entries[0].Details)
	if got := len(strip.Badges); got != 3 {
		t.Fatalf("badge count = %d, want JSONPath, Type and Min Length", got)
	}

	if got := strip.Badges[0].Message; got != "$.name" {
		t.Fatalf("JSONPath badge = %q, want the child instance path", got)
	}
}

func TestGeneratePropertiesAbsentKeyword(t *testing.T) {
	t.Parallel()

	generator := NewGenerator(Config{})
	list, err := generator.GenerateProperties(mustParseSchema(t, `{"type": "object"}`), "$", "doc", "$")
	if err != nil {
		t.Fatalf("GenerateProperties: %v", err)
	}

	if list != nil {
		t.Fatalf("list = %+v, want nil when properties is absent", list)
	}
}

func TestGeneratePatternPropertiesBracketPaths(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `{
		"patternProperties": {"^[A-Z_]+$": {"type": "string"}}
	}`)

	generator := NewGenerator(Config{})
	list, err := generator.GeneratePatternProperties(schema, "$", "doc", "$.env")
	if err != nil {
		t.Fatalf("GeneratePatternProperties: %v", err)
	}

	strip := detailsBadges(t, list.Entries[0].Details)
	if got := strip.Badges[0].Message; got != "$.env[^[A-Z_]+$]" {
		t.Fatalf("JSONPath badge = %q, want bracket addressing", got)
	}
}

func TestGenerateIfThenElse(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `{
		"if": {"properties": {"kind": {"const": "tcp"}}},
		"then": {"required": ["port"]},
		"else": {"title": "Anything else"}
	}`)

	generator := NewGenerator(Config{})
	list, err := generator.GenerateIfThenElse(schema, "$", "doc", "$")
	if err != nil {
		t.Fatalf("GenerateIfThenElse: %v", err)
	}

	if len(list.Entries) != 3 {
		t.Fatalf("entry count = %d, want if, then and else", len(list.Entries))
	}

	terms := make([]string, 0, 3)
	for _, entry := range list.Entries {
		terms = append(terms, rawMarkdown(t, entry.Term))
	}

	want := []string{"[If](#doc-if)", "[Then](#doc-then)", "[Else](#doc-else)"}
	for index, term := range terms {
		if term != want[index] {
			t.Fatalf("term %d = %q, want %q", index, term, want[index])
		}
	}
}

func TestGenerateIfThenElseAbsent(t *testing.T) {
	t.Parallel()

	generator := NewGenerator(Config{})
	list, err := generator.GenerateIfThenElse(mustParseSchema(t, `{"type": "string"}`), "$", "doc", "$")
	if err != nil {
		t.Fatalf("GenerateIfThenElse: %v", err)
	}

	if list != nil {
		t.Fatal("list must be nil without condition keywords")
	}
}

// detailsBadges extracts the badge strip from condensed property details.
func detailsBadges(t *testing.T, details []docmodel.Node) *docmodel.BadgeStrip {
	t.Helper()

	for _, node := range details {
		if strip, ok := node.(*docmodel.BadgeStrip); ok {
			return strip
		}
	}

	t.Fatal("no badge strip in details")

	return nil
}

// titleSummary extracts the leading summary paragraph text from details.
func titleSummary(t *testing.T, details []docmodel.Node) string {
	t.Helper()

	paragraph, ok := details[0].(*docmodel.Paragraph)
	if !ok {
		t.Fatalf("details head type = %T, want *docmodel.Paragraph", details[0])
	}

	return paragraph.Text
}
