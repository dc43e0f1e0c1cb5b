// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"strings"

	"github.com/schemark/schemark/docmodel"
)

// conditionKeywords are rendered by GenerateIfThenElse, in this order.
var conditionKeywords = []string{"if", "then", "else"}

// GenerateProperties renders the properties keyword as a definition list of
// linked names with condensed sub-schema summaries. Returns nil when the
// keyword is absent.
func (g *Generator) GenerateProperties(schema *Schema, schemaPath, tagPrefix, instancePath string) (*docmodel.DefinitionList, error) {
	ctx := genContext{schema: schema, schemaPath: schemaPath, tagPrefix: tagPrefix, instancePath: instancePath}

	return g.propertyList(ctx, "properties", childInstancePath)
}

// GeneratePatternProperties renders the patternProperties keyword the same way
// as GenerateProperties, addressing instances with bracket notation.
func (g *Generator) GeneratePatternProperties(schema *Schema, schemaPath, tagPrefix, instancePath string) (*docmodel.DefinitionList, error) {
	ctx := genContext{schema: schema, schemaPath: schemaPath, tagPrefix: tagPrefix, instancePath: instancePath}

	return g.propertyList(ctx, "patternProperties", childPatternInstancePath)
}

// GenerateIfThenElse renders the if, then and else keywords present on schema
// as a definition list of linked condition summaries. Returns nil when none of
// the keywords are present.
func (g *Generator) GenerateIfThenElse(schema *Schema, schemaPath, tagPrefix, instancePath string) (*docmodel.DefinitionList, error) {
	ctx := genContext{schema: schema, schemaPath: schemaPath, tagPrefix: tagPrefix, instancePath: instancePath}

	list := g.deflist()
	for _, keyword := range conditionKeywords {
		raw, present := ctx.schema.Get(keyword)
		if !present {
			continue
		}

		sub, _ := raw.(*Schema)
		subCtx := ctx.child(sub, ctx.schemaPath+"."+keyword, ctx.instancePath)

		details, err := g.condensedDetails(subCtx)
		if err != nil {
			return nil, err
		}

		term := &docmodel.Raw{Markdown: fmt.Sprintf("[%s](#%s)", g.cfg.KeyTitle(keyword), ctx.tag(keyword))}
		list.Entries = append(list.Entries, docmodel.DefinitionEntry{Term: term, Details: details})
	}

	if len(list.Entries) == 0 {
		return nil, nil
	}

	return list, nil
}

// propertyList builds one declared-order definition list over a mapping of
// property names to sub-schemas.
func (g *Generator) propertyList(ctx genContext, keyword string, childPath func(parent, key string) string) (*docmodel.DefinitionList, error) {
	object := ctx.schema.Child(keyword)
	if object.Len() == 0 {
		return nil, nil
	}

	list := g.deflist()
	for name, raw := range object.All() {
		sub, _ := raw.(*Schema)
		subCtx := ctx.child(sub, ctx.schemaPath+"."+keyword+"."+name, childPath(ctx.instancePath, name))

		details, err := g.condensedDetails(subCtx)
		if err != nil {
			return nil, err
		}

		term := &docmodel.Raw{Markdown: fmt.Sprintf("[`%s`](#%s)", name, ctx.tag(keyword, name))}
		list.Entries = append(list.Entries, docmodel.DefinitionEntry{Term: term, Details: details})
	}

	return list, nil
}

// deflist builds the definition-list shell with configured classes.
func (g *Generator) deflist() *docmodel.DefinitionList {
	return &docmodel.DefinitionList{
		Class:        g.className("deflist"),
		TermClass:    g.className("deflist-key"),
		DetailsClass: g.className("deflist-summary"),
	}
}

// condensedDetails renders the summary line and badge strip for a sub-schema.
func (g *Generator) condensedDetails(ctx genContext) ([]docmodel.Node, error) {
	badges, err := g.headerBadges(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]docmodel.Node, 0, 2)
	if summary := propertySummary(ctx.schema); summary != "" {
		details = append(details, &docmodel.Paragraph{Text: summary})
	}

	details = append(details, &docmodel.BadgeStrip{
		Badges:    badges,
		Classes:   g.cfg.InlineBadgeClasses,
		Separator: g.cfg.BadgeSeparator,
	})

	return details, nil
}

// propertySummary returns the first description paragraph of a sub-schema,
// falling back to its title.
func propertySummary(schema *Schema) string {
	if description := strings.TrimSpace(schema.Str("description")); description != "" {
		return firstParagraph(description)
	}

	return strings.TrimSpace(schema.Str("title"))
}
