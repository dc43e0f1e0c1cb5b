// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds examples covering every declared property.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds examples with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation property coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes the example document as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes the example document as annotated YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures the output encoding of an example document.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback values per scalar schema type.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"number":  0.0,
	"integer": int64(0),
	"boolean": false,
	"null":    nil,
}

// exampleBuilder builds example values against one schema document root.
type exampleBuilder struct {
	root       *Schema
	mode       ExampleMode
	activeRefs map[string]int
}

// ExampleJSON returns an example document for schema as 2-space indented JSON.
func ExampleJSON(schema *Schema, mode ExampleMode) ([]byte, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := newExampleBuilder(schema, mode)
	value := builder.buildValue(schema)

	var out bytes.Buffer
	encoder := jsontext.NewEncoder(&out, jsontext.WithIndent("  "))
	if err := writeJSONValue(encoder, value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return out.Bytes(), nil
}

// ExampleYAML returns an example document for schema as YAML with property
// titles as head comments and descriptions as line comments.
func ExampleYAML(schema *Schema, mode ExampleMode) ([]byte, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := newExampleBuilder(schema, mode)
	value := builder.buildValue(schema)

	node, err := yamlNodeForValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	builder.annotateYAMLNode(node, schema)

	data, err := marshalYAMLNode(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return data, nil
}

// Example returns an example document for schema in the selected format.
func Example(schema *Schema, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExampleFormatJSON:
		return ExampleJSON(schema, mode)
	case ExampleFormatYAML:
		return ExampleYAML(schema, mode)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// newExampleBuilder prepares one builder for a generation call.
func newExampleBuilder(root *Schema, mode ExampleMode) *exampleBuilder {
	return &exampleBuilder{
		root:       root,
		mode:       mode,
		activeRefs: make(map[string]int),
	}
}

// normalizeExampleMode validates and normalizes the caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes the caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// buildValue builds the example value for one schema node.
func (builder *exampleBuilder) buildValue(schema *Schema) any {
	if schema == nil {
		return nil
	}

	if resolved, release, handled := builder.resolveRef(schema); handled {
		if release == nil {
			return nil
		}
		defer release()

		return builder.buildValue(resolved)
	}

	if value, ok := explicitExampleValue(schema); ok {
		return cloneSchemaValue(value)
	}

	schemaType := schemaTypeName(schema)

	if schemaType == "object" || schema.Child("properties").Len() > 0 {
		return builder.buildObject(schema)
	}

	if schemaType == "array" || hasArrayShape(schema) {
		return builder.buildArray(schema)
	}

	if value, ok := schema.Get("const"); ok {
		return cloneSchemaValue(value)
	}

	if values := schema.List("enum"); len(values) > 0 {
		return cloneSchemaValue(values[0])
	}

	if value, ok := builder.compositionFallback(schema); ok {
		return value
	}

	if value, ok := exampleScalarPlaceholders[schemaType]; ok {
		return value
	}

	return nil
}

// buildObject materializes one example object in declared property order.
func (builder *exampleBuilder) buildObject(schema *Schema) *Schema {
	out := NewSchema()
	properties := schema.Child("properties")
	if properties.Len() == 0 {
		return out
	}

	requiredOnly := builder.mode == ExampleModeRequired
	required := make(map[string]struct{})
	for _, name := range schema.StrList("required") {
		required[name] = struct{}{}
	}

	for name, raw := range properties.All() {
		if requiredOnly {
			if _, ok := required[name]; !ok {
				continue
			}
		}

		sub, _ := childSchema(raw)
		out.Set(name, builder.buildValue(sub))
	}

	return out
}

// buildArray materializes one example array from prefixItems or items.
func (builder *exampleBuilder) buildArray(schema *Schema) []any {
	if prefixItems := schema.List("prefixItems"); len(prefixItems) > 0 {
		out := make([]any, 0, len(prefixItems))
		for _, raw := range prefixItems {
			sub, ok := childSchema(raw)
			if !ok {
				out = append(out, nil)
				continue
			}

			out = append(out, builder.buildValue(sub))
		}

		return out
	}

	if items := schema.Child("items"); items != nil {
		return []any{builder.buildValue(items)}
	}

	return []any{}
}

// compositionFallback builds from the first sub-schema of oneOf, anyOf or allOf.
func (builder *exampleBuilder) compositionFallback(schema *Schema) (any, bool) {
	for _, keyword := range []string{"oneOf", "anyOf", "allOf"} {
		for _, raw := range schema.List(keyword) {
			sub, ok := childSchema(raw)
			if !ok {
				continue
			}

			return builder.buildValue(sub), true
		}
	}

	return nil, false
}

// resolveRef expands a local $ref with sibling keyword overlays and a cycle
// guard. handled reports whether a $ref was present; a nil release callback
// means the reference is already active and the caller must emit nothing.
func (builder *exampleBuilder) resolveRef(schema *Schema) (*Schema, func(), bool) {
	ref := strings.TrimSpace(schema.Str("$ref"))
	if ref == "" || !strings.HasPrefix(ref, "#") {
		return nil, nil, false
	}

	raw, err := resolveLocalPointer(builder.root, ref)
	if err != nil {
		return nil, nil, false
	}

	target, ok := childSchema(raw)
	if !ok {
		return nil, nil, false
	}

	if builder.activeRefs[ref] > 0 {
		return nil, nil, true
	}

	builder.activeRefs[ref]++
	release := func() {
		builder.activeRefs[ref]--
		if builder.activeRefs[ref] <= 0 {
			delete(builder.activeRefs, ref)
		}
	}

	merged := target.Clone()
	for key, value := range schema.All() {
		if key == "$ref" {
			continue
		}

		merged.Set(key, cloneSchemaValue(value))
	}

	return merged, release, true
}

// explicitExampleValue returns the preferred authored example value.
func explicitExampleValue(schema *Schema) (any, bool) {
	if value, ok := schema.Get("default"); ok {
		return value, true
	}

	if values := schema.List("examples"); len(values) > 0 {
		return values[0], true
	}

	return nil, false
}

// schemaTypeName returns the first non-null name from the type keyword.
func schemaTypeName(schema *Schema) string {
	value, ok := schema.Get("type")
	if !ok {
		return ""
	}

	if text, ok := value.(string); ok {
		return strings.ToLower(text)
	}

	names := asStrings(schema.List("type"))
	for _, name := range names {
		if name := strings.ToLower(name); name != "" && name != "null" {
			return name
		}
	}

	if len(names) > 0 {
		return strings.ToLower(names[0])
	}

	return ""
}

// hasArrayShape reports whether schema declares array structure keywords.
func hasArrayShape(schema *Schema) bool {
	return schema.Child("items") != nil || len(schema.List("prefixItems")) > 0
}

// annotateYAMLNode attaches title and description comments to generated
// mapping keys, following the schema tree alongside the value tree.
func (builder *exampleBuilder) annotateYAMLNode(node *yaml.Node, schema *Schema) {
	if node == nil || schema == nil {
		return
	}

	if resolved, release, handled := builder.resolveRef(schema); handled {
		if release == nil {
			return
		}
		defer release()

		builder.annotateYAMLNode(node, resolved)

		return
	}

	switch node.Kind {
	case yaml.MappingNode:
		properties := schema.Child("properties")
		for index := 0; index+1 < len(node.Content); index += 2 {
			keyNode := node.Content[index]
			valueNode := node.Content[index+1]

			property, ok := childSchema(mustGet(properties, keyNode.Value))
			if !ok {
				continue
			}

			annotateMappingKey(keyNode, valueNode, property)
			builder.annotateYAMLNode(valueNode, property)
		}
	case yaml.SequenceNode:
		item := sequenceItemSchema(schema)
		for _, child := range node.Content {
			builder.annotateYAMLNode(child, item)
		}
	}
}

// annotateMappingKey writes the title head comment and description line comment.
func annotateMappingKey(keyNode, valueNode *yaml.Node, property *Schema) {
	title := sanitizeText(property.Str("title"))
	description := firstParagraph(property.Str("description"))

	if title != "" {
		keyNode.HeadComment = title
	}

	if description == "" || description == title {
		return
	}

	if valueNode.Kind == yaml.ScalarNode {
		valueNode.LineComment = description
		return
	}

	if keyNode.HeadComment != "" {
		keyNode.HeadComment += "\n" + description
		return
	}

	keyNode.HeadComment = description
}

// sequenceItemSchema selects the schema annotating sequence elements.
func sequenceItemSchema(schema *Schema) *Schema {
	if items := schema.Child("items"); items != nil {
		return items
	}

	for _, raw := range schema.List("prefixItems") {
		if item, ok := childSchema(raw); ok {
			return item
		}
	}

	return nil
}

// mustGet reads one key from a possibly nil schema node.
func mustGet(schema *Schema, key string) any {
	value, _ := schema.Get(key)
	return value
}
