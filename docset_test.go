// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"errors"
	"os"
	"strings"
	"testing"
)

// writeTestFile creates one fixture file for file-based loading tests.
func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestDocSetPagesAndSections(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})

	err := set.AddSchemaBytes([]byte(`{
		"title": "Service Config",
		"type": "object",
		"properties": {
			"server": {
				"type": "object",
				"properties": {"port": {"type": "integer"}}
			},
			"name": {"type": "string"}
		}
	}`), "config")
	if err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	if len(pages) != 1 {
		t.Fatalf("page count = %d, want 1", len(pages))
	}

	page := pages[0]
	if page.Title != "Service Config" || page.Slug != "service-config" {
		t.Fatalf("page identity = %q / %q", page.Title, page.Slug)
	}

	if page.TagPrefix != "jsonschema-service-config" {
		t.Fatalf("page tag prefix = %q", page.TagPrefix)
	}

	titles := make([]string, 0, len(page.Sections))
	for _, section := range page.Sections {
		titles = append(titles, section.Title)
	}

	want := "Service Config,server,port,name"
	if got := strings.Join(titles, ","); got != want {
		t.Fatalf("section order = %q, want %q", got, want)
	}

	root := page.Sections[0]
	if root.Level != 1 || root.SchemaPath != "$" || root.InstancePath != "$" {
		t.Fatalf("root section = %+v", root)
	}

	port := page.Sections[2]
	if port.Level != 3 || port.SchemaPath != "$.properties.server.properties.port" {
		t.Fatalf("port section = %+v", port)
	}

	if port.InstancePath != "$.server.port" {
		t.Fatalf("port instance path = %q", port.InstancePath)
	}
}

func TestDocSetSectionAnchorsMatchGeneratorLinks(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})

	err := set.AddSchemaBytes([]byte(`{
		"title": "Doc",
		"properties": {"name": {"type": "string"}}
	}`), "doc")
	if err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	page := pages[0]
	rootList := page.Sections[0].Properties
	termLink := rawMarkdown(t, rootList.Entries[0].Term)

	nameAnchor := page.Sections[1].Anchor
	assertContains(t, termLink, "(#"+nameAnchor+")")
}

func TestDocSetAutoFillsRegistry(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})

	err := set.AddSchemaBytes([]byte(`{
		"$id": "urn:example:root",
		"$defs": {
			"inner": {"$id": "urn:example:inner", "type": "string"},
			"anonymous": {"type": "integer"}
		}
	}`), "root")
	if err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	registry := set.Generator().Config().Registry
	for _, id := range []string{"urn:example:root", "urn:example:inner"} {
		if _, err := registry.Lookup(id); err != nil {
			t.Errorf("Lookup(%q): %v", id, err)
		}
	}
}

func TestDocSetRegisterTwiceTolerated(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})
	text := []byte(`{"$id": "urn:example:twice"}`)

	if err := set.AddSchemaBytes(text, "a"); err != nil {
		t.Fatalf("first add: %v", err)
	}

	if err := set.AddSchemaBytes(text, "b"); err != nil {
		t.Fatalf("second add: %v", err)
	}
}

func TestDocSetDepthLimit(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{MaxDepth: 2})

	err := set.AddSchemaBytes([]byte(`{
		"properties": {
			"a": {"properties": {
				"b": {"properties": {
					"c": {"properties": {"d": {"type": "string"}}}
				}}
			}}
		}
	}`), "deep")
	if err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	if _, err := set.Pages(); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("Pages error = %v, want ErrDepthExceeded", err)
	}
}

func TestDocSetDraftWarning(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})

	if err := set.AddSchemaBytes([]byte(`{"$schema": "https://example.com/meta"}`), "odd"); err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	warnings := set.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}

	assertContains(t, warnings[0], "https://example.com/meta")
}

func TestDocSetDefsBecomeRootSections(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})

	err := set.AddSchemaBytes([]byte(`{
		"title": "Doc",
		"$defs": {"address": {"title": "Address", "type": "object"}}
	}`), "doc")
	if err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	sections := pages[0].Sections
	if len(sections) != 2 {
		t.Fatalf("section count = %d, want 2", len(sections))
	}

	address := sections[1]
	if address.Title != "Address" || address.SchemaPath != "$.$defs.address" {
		t.Fatalf("address section = %+v", address)
	}

	// Definitions validate their own instances, so the instance path resets.
	if address.InstancePath != "$" {
		t.Fatalf("address instance path = %q", address.InstancePath)
	}
}

func TestDocSetRefAnchor(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})

	if err := set.AddSchemaBytes([]byte(`{"$id": "urn:example:thing"}`), "thing"); err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	if got := pages[0].RefAnchor; got != "jsonschema-ref-urn-example-thing" {
		t.Fatalf("ref anchor = %q", got)
	}
}

func TestDocSetRefAnchorCustomRefTag(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{
		RefTag: func(target *Schema) string { return "thing" },
	}, DocSetOptions{})

	if err := set.AddSchemaBytes([]byte(`{"$id": "urn:example:thing"}`), "thing"); err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	// The prefix still defaults even when only RefTag is supplied.
	if got := pages[0].RefAnchor; got != "jsonschema-ref-thing" {
		t.Fatalf("ref anchor = %q", got)
	}
}

func TestDocSetExampleSection(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{
		ExampleMode:   ExampleModeAll,
		ExampleFormat: ExampleFormatYAML,
	})

	err := set.AddSchemaBytes([]byte(`{
		"type": "object",
		"properties": {"port": {"type": "integer", "default": 80}}
	}`), "svc")
	if err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	if pages[0].ExampleLanguage != "yaml" {
		t.Fatalf("example language = %q", pages[0].ExampleLanguage)
	}

	assertContains(t, pages[0].ExampleCode, "port: 80")
}

func TestDocSetAddSchemaFileName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := dir + "/service-config.schema.json"
	if err := writeTestFile(path, `{"type": "object"}`); err != nil {
		t.Fatalf("write: %v", err)
	}

	set := NewDocSet(Config{}, DocSetOptions{})
	if err := set.AddSchemaFile(path); err != nil {
		t.Fatalf("AddSchemaFile: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	if got := pages[0].Title; got != "service-config.schema" {
		t.Fatalf("fallback title = %q, want the file base name", got)
	}
}
