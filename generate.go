// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"strings"

	"github.com/schemark/schemark/docmodel"
)

// Generator renders schema nodes into structured document fragments.
//
// A generator is immutable after construction and safe for concurrent use;
// every call receives its positional context through explicit arguments.
type Generator struct {
	cfg Config
}

// NewGenerator builds a generator with defaults resolved into cfg.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg.withDefaults()}
}

// Config returns the generator's effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// genContext binds one call's schema node and positional parameters.
type genContext struct {
	schema       *Schema
	schemaPath   string
	tagPrefix    string
	instancePath string
}

// tag builds an anchor name scoped to the call's tag prefix and schema path.
func (ctx genContext) tag(parts ...string) string {
	return tagNameFor(ctx.tagPrefix, ctx.schemaPath, parts...)
}

// child derives the context for a sub-schema one keyword level down.
func (ctx genContext) child(schema *Schema, schemaPath, instancePath string) genContext {
	return genContext{
		schema:       schema,
		schemaPath:   schemaPath,
		tagPrefix:    ctx.tagPrefix,
		instancePath: instancePath,
	}
}

// Body is the generated document fragment for one schema node.
type Body struct {
	Badges      *docmodel.BadgeStrip
	Summary     *docmodel.Paragraph
	Tabs        *docmodel.TabSet
	Description *docmodel.Raw
}

// Nodes returns the body blocks in presentation order.
func (body *Body) Nodes() []docmodel.Node {
	out := make([]docmodel.Node, 0, 5)
	if body.Badges != nil {
		out = append(out, body.Badges)
	}

	out = append(out, &docmodel.ThematicBreak{})

	if body.Summary != nil {
		out = append(out, body.Summary)
	}

	if body.Tabs != nil {
		out = append(out, body.Tabs)
	}

	if body.Description != nil {
		out = append(out, body.Description)
	}

	return out
}

// Markdown renders the body blocks with the given options.
func (body *Body) Markdown(options docmodel.RenderOptions) string {
	return docmodel.Render(body.Nodes(), options)
}

// Generate renders schema into badges, summary, tabs and description blocks.
//
// schemaPath is the schema's own JSONPath and seeds every anchor; tagPrefix
// namespaces anchors across schemas sharing a page; instancePath is the
// JSONPath of the instances the schema validates.
func (g *Generator) Generate(schema *Schema, schemaPath, tagPrefix, instancePath string) (*Body, error) {
	ctx := genContext{
		schema:       schema,
		schemaPath:   schemaPath,
		tagPrefix:    tagPrefix,
		instancePath: instancePath,
	}

	badges, err := g.headerBadges(ctx)
	if err != nil {
		return nil, err
	}

	body := &Body{
		Badges: &docmodel.BadgeStrip{
			Badges:    badges,
			Classes:   g.cfg.HeaderBadgeClasses,
			Separator: g.cfg.BadgeSeparator,
		},
	}

	if summary := strings.TrimSpace(schema.Str(summaryKeyword)); summary != "" {
		body.Summary = &docmodel.Paragraph{
			Text:    summary,
			Anchor:  ctx.tag(summaryKeyword),
			Classes: []string{g.className(summaryKeyword)},
		}
	}

	tabs, err := g.generateTabs(ctx)
	if err != nil {
		return nil, err
	}

	body.Tabs = tabs

	if description := strings.TrimSpace(schema.Str("description")); description != "" {
		body.Description = &docmodel.Raw{Markdown: g.formatDescription(description)}
	}

	return body, nil
}
