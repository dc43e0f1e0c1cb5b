// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderMarkdownPage(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{ExampleMode: ExampleModeAll})

	err := set.AddSchemaBytes([]byte(`{
		"$id": "urn:example:config",
		"title": "Config",
		"type": "object",
		"description": "Top-level configuration.",
		"properties": {"name": {"type": "string"}}
	}`), "config")
	if err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	out, err := set.RenderMarkdown(pages[0])
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}

	assertContains(t, out, `title: "Config"`)
	assertContains(t, out, `<span id="jsonschema-ref-urn-example-config"></span>`)
	assertContains(t, out, "# Config {: #jsonschema-config }")
	assertContains(t, out, "## name {: #jsonschema-config-properties-name }")
	assertContains(t, out, "img.shields.io")
	assertContains(t, out, "Top-level configuration.")
	assertContains(t, out, "## Example")
	assertContains(t, out, "```json")

	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Fatal("output must end with exactly one newline")
	}
}

func TestRenderMarkdownCustomTemplate(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{
		TemplateText: "{{ .Title | upper }}: {{ len .Sections }} sections",
	})

	if err := set.AddSchemaBytes([]byte(`{"title": "Small"}`), "small"); err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	out, err := set.RenderMarkdown(pages[0])
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}

	if out != "SMALL: 1 sections\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderMarkdownBadTemplate(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{TemplateText: "{{ .Title"})

	if err := set.AddSchemaBytes([]byte(`{"title": "X"}`), "x"); err != nil {
		t.Fatalf("AddSchemaBytes: %v", err)
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	if _, err := set.RenderMarkdown(pages[0]); !errors.Is(err, ErrParseBuiltinTemplate) {
		t.Fatalf("error = %v, want ErrParseBuiltinTemplate", err)
	}
}

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	set := NewDocSet(Config{}, DocSetOptions{})

	for _, text := range []string{`{"title": "Alpha"}`, `{"title": "Beta"}`} {
		if err := set.AddSchemaBytes([]byte(text), ""); err != nil {
			t.Fatalf("AddSchemaBytes: %v", err)
		}
	}

	pages, err := set.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}

	out, err := set.RenderIndex("", pages)
	if err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}

	assertContains(t, out, "# Schema Reference")
	assertContains(t, out, "- [Alpha](alpha.md)")
	assertContains(t, out, "- [Beta](beta.md)")
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]string{TemplateIndex, TemplatePage}, BuiltinTemplateNames()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	for _, name := range BuiltinTemplateNames() {
		text, err := BuiltinTemplate(name)
		if err != nil {
			t.Fatalf("BuiltinTemplate(%q): %v", name, err)
		}

		if !strings.Contains(text, "{{") {
			t.Fatalf("template %q has no actions", name)
		}
	}

	if _, err := BuiltinTemplate("nope"); !errors.Is(err, ErrUnknownBuiltinTemplate) {
		t.Fatalf("error = %v, want ErrUnknownBuiltinTemplate", err)
	}
}
