// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import "errors"

var (
	// ErrDecodeSchema is returned when schema document decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaRootType is returned when schema root is not a keyword mapping.
	ErrSchemaRootType = errors.New("schema root must be a keyword mapping")
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrRegistryRequired is returned when a $ref keyword is rendered without a configured registry.
	ErrRegistryRequired = errors.New("schema registry required for $ref resolution")
	// ErrUnresolvedRef is returned when a registry lookup does not know the requested id.
	ErrUnresolvedRef = errors.New("unresolved schema reference")
	// ErrMissingID is returned when a schema without $id is registered without an explicit id.
	ErrMissingID = errors.New("schema has no $id")
	// ErrDuplicateID is returned when a registry id is registered twice.
	ErrDuplicateID = errors.New("duplicate schema id")
	// ErrEncodeValueYAML is returned when value serialization to YAML fails.
	ErrEncodeValueYAML = errors.New("encode value yaml")
	// ErrEncodeValueJSON is returned when value serialization to JSON fails.
	ErrEncodeValueJSON = errors.New("encode value json")
	// ErrDepthExceeded is returned when nested section generation passes the configured depth limit.
	ErrDepthExceeded = errors.New("schema nesting depth exceeded")
	// ErrNoComponentSchemas is returned when an OpenAPI document carries no components.schemas entries.
	ErrNoComponentSchemas = errors.New("openapi document has no component schemas")
	// ErrLoadOpenAPI is returned when OpenAPI document loading fails.
	ErrLoadOpenAPI = errors.New("load openapi document")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
)
