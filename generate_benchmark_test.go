// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkParseSchema measures schema decoding into ordered nodes.
func BenchmarkParseSchema(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, filepath.Join("testdata", "schema.fixture.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseSchema(schemaBytes); err != nil {
			b.Fatalf("ParseSchema: %v", err)
		}
	}
}

// BenchmarkGenerate measures one body generation for a parsed schema node.
func BenchmarkGenerate(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, filepath.Join("testdata", "schema.fixture.json"))

	schema, err := ParseSchema(schemaBytes)
	if err != nil {
		b.Fatalf("ParseSchema: %v", err)
	}

	registry := NewMemoryRegistry()
	if err := registry.Add(schema); err != nil {
		b.Fatalf("Add: %v", err)
	}

	generator := NewGenerator(Config{Registry: registry})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := generator.Generate(schema, "$", "bench", "$"); err != nil {
			b.Fatalf("Generate: %v", err)
		}
	}
}

// BenchmarkRenderMarkdown measures full page generation and template rendering.
func BenchmarkRenderMarkdown(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, filepath.Join("testdata", "schema.fixture.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		set := NewDocSet(Config{}, DocSetOptions{})
		if err := set.AddSchemaBytes(schemaBytes, "fixture"); err != nil {
			b.Fatalf("AddSchemaBytes: %v", err)
		}

		pages, err := set.Pages()
		if err != nil {
			b.Fatalf("Pages: %v", err)
		}

		for _, page := range pages {
			if _, err := set.RenderMarkdown(page); err != nil {
				b.Fatalf("RenderMarkdown: %v", err)
			}
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
