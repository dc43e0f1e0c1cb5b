// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIOptions adjusts component schema extraction from OpenAPI documents.
type OpenAPIOptions struct {
	// AllowExternalRefs permits the loader to follow external references.
	AllowExternalRefs bool
	// Validate runs document validation before extraction; example values are
	// not validated because they routinely drift from their schemas.
	Validate bool
	// DocID overrides the identifier prefix of synthesized $id values;
	// defaults to the slug of info.title.
	DocID string
}

// AddOpenAPI extracts every components.schemas entry of one OpenAPI document
// and collects each as a page schema, in sorted component-name order.
//
// Component schemas without an $id get a synthesized one,
// "{docID}#/components/schemas/{name}", so $ref badges and the shared
// registry keep working across components.
func (set *DocSet) AddOpenAPI(data []byte, opts OpenAPIOptions) error {
	ctx := context.Background()
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: opts.AllowExternalRefs}

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadOpenAPI, err)
	}

	if opts.Validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return fmt.Errorf("%w: %w", ErrLoadOpenAPI, err)
		}
	}

	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return ErrNoComponentSchemas
	}

	docID := strings.TrimSpace(opts.DocID)
	if docID == "" && doc.Info != nil {
		docID = Slugify(doc.Info.Title)
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}

		schema, err := componentSchema(ref.Value)
		if err != nil {
			return fmt.Errorf("component %q: %w", name, err)
		}

		if strings.TrimSpace(schema.Str("$id")) == "" {
			schema.Set("$id", docID+"#/components/schemas/"+name)
		}

		if err := set.AddSchema(schema, name); err != nil {
			return err
		}
	}

	return nil
}

// componentSchema converts one loaded OpenAPI schema into an ordered node.
func componentSchema(value *openapi3.Schema) (*Schema, error) {
	data, err := value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadOpenAPI, err)
	}

	return ParseSchema(data)
}
