// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// ValueYAML serializes one schema value as YAML text in declared key order.
func ValueYAML(value any) (string, error) {
	node, err := yamlNodeForValue(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeValueYAML, err)
	}

	data, err := marshalYAMLNode(node)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeValueYAML, err)
	}

	return strings.TrimRight(string(data), "\n"), nil
}

// ValueJSON serializes one schema value as 4-space indented JSON in declared key order.
func ValueJSON(value any) (string, error) {
	var out bytes.Buffer
	encoder := jsontext.NewEncoder(&out, jsontext.WithIndent("    "))
	if err := writeJSONValue(encoder, value); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeValueJSON, err)
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

// writeJSONValue writes one schema value as JSON tokens.
func writeJSONValue(encoder *jsontext.Encoder, value any) error {
	switch typed := value.(type) {
	case nil:
		return encoder.WriteToken(jsontext.Null)
	case bool:
		return encoder.WriteToken(jsontext.Bool(typed))
	case string:
		return encoder.WriteToken(jsontext.String(typed))
	case int:
		return encoder.WriteToken(jsontext.Int(int64(typed)))
	case int64:
		return encoder.WriteToken(jsontext.Int(typed))
	case float64:
		return encoder.WriteToken(jsontext.Float(typed))
	case *Schema:
		if err := encoder.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}

		for key, item := range typed.All() {
			if err := encoder.WriteToken(jsontext.String(key)); err != nil {
				return err
			}

			if err := writeJSONValue(encoder, item); err != nil {
				return err
			}
		}

		return encoder.WriteToken(jsontext.EndObject)
	case []any:
		if err := encoder.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}

		for _, item := range typed {
			if err := writeJSONValue(encoder, item); err != nil {
				return err
			}
		}

		return encoder.WriteToken(jsontext.EndArray)
	default:
		// Values without a JSON form degrade to their string rendering.
		return encoder.WriteToken(jsontext.String(fmt.Sprint(typed)))
	}
}

// yamlNodeForValue builds a deterministic yaml.Node tree from one schema value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil
	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil
	case string:
		return yamlScalarNode("!!str", typed), nil
	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil
	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil
	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil
	case *Schema:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for key, item := range typed.All() {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil
	default:
		return yamlScalarNode("!!str", fmt.Sprint(typed)), nil
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// marshalYAMLNode serializes one yaml node under a document wrapper.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// scalarText renders one scalar keyword value as badge message text.
func scalarText(value any) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}
