// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"errors"
	"strings"
	"testing"
)

func TestExampleJSONScalarPlaceholders(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema string
		want   string
	}{
		{"string", `{"type": "string"}`, `"<string>"`},
		{"integer", `{"type": "integer"}`, "0"},
		{"number", `{"type": "number"}`, "0"},
		{"boolean", `{"type": "boolean"}`, "false"},
		{"null", `{"type": "null"}`, "null"},
		{"untyped", `{}`, "null"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := ExampleJSON(mustParseSchema(t, testCase.schema), ExampleModeAll)
			if err != nil {
				t.Fatalf("ExampleJSON: %v", err)
			}

			if got := strings.TrimSpace(string(out)); got != testCase.want {
				t.Fatalf("example = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestExampleJSONPrefersAuthoredValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema string
		want   string
	}{
		{"default wins", `{"type": "integer", "default": 8080, "examples": [1]}`, "8080"},
		{"examples next", `{"type": "string", "examples": ["first", "second"]}`, `"first"`},
		{"const", `{"const": "fixed"}`, `"fixed"`},
		{"enum head", `{"enum": ["a", "b"]}`, `"a"`},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := ExampleJSON(mustParseSchema(t, testCase.schema), ExampleModeAll)
			if err != nil {
				t.Fatalf("ExampleJSON: %v", err)
			}

			if got := strings.TrimSpace(string(out)); got != testCase.want {
				t.Fatalf("example = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestExampleJSONObjectModes(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `{
		"type": "object",
		"properties": {
			"host": {"type": "string", "default": "localhost"},
			"port": {"type": "integer"},
			"debug": {"type": "boolean"}
		},
		"required": ["host", "port"]
	}`)

	all, err := ExampleJSON(schema, ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleJSON all: %v", err)
	}

	for _, key := range []string{`"host"`, `"port"`, `"debug"`} {
		assertContains(t, string(all), key)
	}

	assertContains(t, string(all), `"localhost"`)

	required, err := ExampleJSON(schema, ExampleModeRequired)
	if err != nil {
		t.Fatalf("ExampleJSON required: %v", err)
	}

	assertContains(t, string(required), `"host"`)
	assertContains(t, string(required), `"port"`)
	assertNotContains(t, string(required), `"debug"`)
}

func TestExampleJSONArrays(t *testing.T) {
	t.Parallel()

	items, err := ExampleJSON(mustParseSchema(t, `{
		"type": "array",
		"items": {"type": "string"}
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleJSON: %v", err)
	}

	assertContains(t, string(items), `"<string>"`)

	prefixed, err := ExampleJSON(mustParseSchema(t, `{
		"prefixItems": [{"const": "tcp"}, {"type": "integer"}]
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleJSON: %v", err)
	}

	assertContains(t, string(prefixed), `"tcp"`)
	assertContains(t, string(prefixed), "0")
}

func TestExampleJSONCompositionFallback(t *testing.T) {
	t.Parallel()

	out, err := ExampleJSON(mustParseSchema(t, `{
		"oneOf": [{"type": "string"}, {"type": "integer"}]
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleJSON: %v", err)
	}

	if got := strings.TrimSpace(string(out)); got != `"<string>"` {
		t.Fatalf("example = %q, want the first oneOf branch", got)
	}
}

func TestExampleJSONResolvesLocalRefs(t *testing.T) {
	t.Parallel()

	out, err := ExampleJSON(mustParseSchema(t, `{
		"type": "object",
		"properties": {"name": {"$ref": "#/$defs/shortName"}},
		"$defs": {"shortName": {"type": "string", "default": "ada"}}
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleJSON: %v", err)
	}

	assertContains(t, string(out), `"ada"`)
}

func TestExampleJSONRefSiblingsOverlay(t *testing.T) {
	t.Parallel()

	out, err := ExampleJSON(mustParseSchema(t, `{
		"properties": {"name": {"$ref": "#/$defs/base", "default": "override"}},
		"$defs": {"base": {"type": "string", "default": "base"}}
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleJSON: %v", err)
	}

	assertContains(t, string(out), `"override"`)
	assertNotContains(t, string(out), `"base"`)
}

func TestExampleJSONRefCycleTerminates(t *testing.T) {
	t.Parallel()

	out, err := ExampleJSON(mustParseSchema(t, `{
		"type": "object",
		"properties": {"next": {"$ref": "#"}}
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleJSON: %v", err)
	}

	assertContains(t, string(out), `"next"`)
}

func TestExampleYAMLAnnotations(t *testing.T) {
	t.Parallel()

	out, err := ExampleYAML(mustParseSchema(t, `{
		"type": "object",
		"properties": {
			"host": {
				"type": "string",
				"title": "Listen host",
				"description": "Bind address of the server.\n\nMore detail ignored.",
				"default": "localhost"
			}
		}
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleYAML: %v", err)
	}

	text := string(out)
	assertContains(t, text, "# Listen host")
	assertContains(t, text, "# Bind address of the server.")
	assertNotContains(t, text, "More detail ignored")
}

func TestExampleYAMLNestedObjectDescription(t *testing.T) {
	t.Parallel()

	out, err := ExampleYAML(mustParseSchema(t, `{
		"type": "object",
		"properties": {
			"server": {
				"type": "object",
				"description": "Server settings.",
				"properties": {"port": {"type": "integer", "default": 80}}
			}
		}
	}`), ExampleModeAll)
	if err != nil {
		t.Fatalf("ExampleYAML: %v", err)
	}

	text := string(out)
	assertContains(t, text, "# Server settings.")
	assertContains(t, text, "port: 80")
}

func TestExampleUnknownModeAndFormat(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `{"type": "string"}`)

	if _, err := ExampleJSON(schema, "everything"); !errors.Is(err, ErrUnknownExampleMode) {
		t.Fatalf("error = %v, want ErrUnknownExampleMode", err)
	}

	if _, err := Example(schema, ExampleModeAll, "toml"); !errors.Is(err, ErrUnknownExampleFormat) {
		t.Fatalf("error = %v, want ErrUnknownExampleFormat", err)
	}
}

func TestExampleFormatDispatch(t *testing.T) {
	t.Parallel()

	schema := mustParseSchema(t, `{"type": "integer", "default": 5}`)

	jsonOut, err := Example(schema, ExampleModeAll, "JSON")
	if err != nil {
		t.Fatalf("Example json: %v", err)
	}

	if got := strings.TrimSpace(string(jsonOut)); got != "5" {
		t.Fatalf("json example = %q", got)
	}

	yamlOut, err := Example(schema, ExampleModeAll, ExampleFormatYAML)
	if err != nil {
		t.Fatalf("Example yaml: %v", err)
	}

	if got := strings.TrimSpace(string(yamlOut)); got != "5" {
		t.Fatalf("yaml example = %q", got)
	}
}
