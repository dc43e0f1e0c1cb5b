// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemark/schemark/docmodel"
)

// rawTabKey and rawTabTitle name the mandatory trailing raw schema tab.
const (
	rawTabKey   = "schema"
	rawTabTitle = "JSONSchema"
)

// tabRule pairs one trigger keyword with its tab builder.
type tabRule struct {
	Keyword string
	Build   func(g *Generator, ctx genContext) (*docmodel.TabItem, error)
}

// tabRules is the keyword dispatch table for tabs; table order is tab order.
var tabRules = []tabRule{
	{"default", tabDefault},
	{"required", tabRequired},
	{"const", tabConst},
	{"pattern", tabPattern},
	{"enum", tabEnum},
	{"examples", tabExamples},
}

// generateTabs builds the tab set for one schema node, ending with the raw
// schema tab.
func (g *Generator) generateTabs(ctx genContext) (*docmodel.TabSet, error) {
	items := make([]docmodel.TabItem, 0, len(tabRules)+1)
	for _, rule := range tabRules {
		tab, err := rule.Build(g, ctx)
		if err != nil {
			return nil, err
		}

		if tab == nil {
			continue
		}

		items = append(items, *tab)
	}

	raw, err := g.rawSchemaTab(ctx)
	if err != nil {
		return nil, err
	}

	items = append(items, *raw)

	return &docmodel.TabSet{Class: g.className("tab-set"), Items: items}, nil
}

// tabItem wraps tab children with the keyword anchor and label class.
func (g *Generator) tabItem(ctx genContext, key, title string, children []docmodel.Node) *docmodel.TabItem {
	return &docmodel.TabItem{
		Key:      key,
		Title:    title,
		Anchor:   ctx.tag(key),
		Classes:  []string{g.className("tab-item")},
		Children: children,
	}
}

// tabDefault renders the default keyword tab.
func tabDefault(g *Generator, ctx genContext) (*docmodel.TabItem, error) {
	return g.simpleValueTab(ctx, "default")
}

// tabConst renders the const keyword tab.
func tabConst(g *Generator, ctx genContext) (*docmodel.TabItem, error) {
	return g.simpleValueTab(ctx, "const")
}

// tabPattern renders the pattern keyword tab.
func tabPattern(g *Generator, ctx genContext) (*docmodel.TabItem, error) {
	return g.simpleValueTab(ctx, "pattern")
}

// tabEnum renders the enum keyword tab.
func tabEnum(g *Generator, ctx genContext) (*docmodel.TabItem, error) {
	return g.arrayValueTab(ctx, "enum")
}

// tabExamples renders the examples keyword tab.
func tabExamples(g *Generator, ctx genContext) (*docmodel.TabItem, error) {
	return g.arrayValueTab(ctx, "examples")
}

// simpleValueTab renders one tab holding a single serialized value with its
// companion intro and description.
func (g *Generator) simpleValueTab(ctx genContext, keyword string) (*docmodel.TabItem, error) {
	value, hasValue := ctx.schema.Get(keyword)
	intro := strings.TrimSpace(ctx.schema.Str(g.cfg.titleKeyFor(keyword)))
	description := strings.TrimSpace(ctx.schema.Str(g.cfg.descriptionKeyFor(keyword)))

	if !hasValue && intro == "" && description == "" {
		return nil, nil
	}

	children := make([]docmodel.Node, 0, 3)
	if intro != "" {
		children = append(children, &docmodel.Paragraph{Text: intro})
	}

	if description != "" {
		children = append(children, &docmodel.Raw{Markdown: g.formatDescription(description)})
	}

	if hasValue {
		code, err := g.cfg.ValueCode(value)
		if err != nil {
			return nil, err
		}

		children = append(children, &docmodel.CodeBlock{Language: g.cfg.ValueCodeLanguage, Code: code})
	}

	return g.tabItem(ctx, keyword, g.cfg.KeyTitle(keyword), children), nil
}

// arrayValueTab renders one tab holding a list of serialized values, pairing
// each element with its positional companion description.
func (g *Generator) arrayValueTab(ctx genContext, keyword string) (*docmodel.TabItem, error) {
	values := ctx.schema.List(keyword)
	intro := strings.TrimSpace(ctx.schema.Str(g.cfg.titleKeyFor(keyword)))
	descriptions := ctx.schema.List(g.cfg.descriptionKeyFor(keyword))

	if !ctx.schema.Has(keyword) && intro == "" && len(descriptions) == 0 {
		return nil, nil
	}

	children := make([]docmodel.Node, 0, 2)
	if intro != "" {
		children = append(children, &docmodel.Paragraph{Text: intro})
	}

	list := &docmodel.List{Ordered: true}
	for index, element := range values {
		item := docmodel.ListItem{}
		if index < len(descriptions) {
			if text := strings.TrimSpace(scalarText(descriptions[index])); text != "" {
				item.Children = append(item.Children, &docmodel.Raw{Markdown: g.formatDescription(text)})
			}
		}

		code, err := g.cfg.ValueCode(element)
		if err != nil {
			return nil, err
		}

		item.Children = append(item.Children, &docmodel.CodeBlock{Language: g.cfg.ValueCodeLanguage, Code: code})
		list.Items = append(list.Items, item)
	}

	if len(list.Items) > 0 {
		children = append(children, list)
	}

	return g.tabItem(ctx, keyword, g.cfg.KeyTitle(keyword), children), nil
}

// tabRequired renders the combined required and dependentRequired tab.
func tabRequired(g *Generator, ctx genContext) (*docmodel.TabItem, error) {
	required := ctx.schema.StrList("required")
	dependent := ctx.schema.Child("dependentRequired")

	if len(required) == 0 && dependent.Len() == 0 {
		return nil, nil
	}

	properties := ctx.schema.Child("properties")

	sortedRequired := append([]string(nil), required...)
	sort.Strings(sortedRequired)

	items := make([]docmodel.ListItem, 0, len(sortedRequired)+dependent.Len())
	for _, name := range sortedRequired {
		items = append(items, docmodel.ListItem{Children: []docmodel.Node{
			&docmodel.Raw{Markdown: g.propertyRef(ctx, properties, name)},
		}})
	}

	dependencies := dependent.Keys()
	sort.Strings(dependencies)

	for _, dependency := range dependencies {
		dependents := asStrings(dependent.List(dependency))
		sort.Strings(dependents)

		nested := &docmodel.List{}
		for _, name := range dependents {
			nested.Items = append(nested.Items, docmodel.ListItem{Children: []docmodel.Node{
				&docmodel.Raw{Markdown: g.propertyRef(ctx, properties, name)},
			}})
		}

		items = append(items, docmodel.ListItem{Children: []docmodel.Node{
			&docmodel.Raw{Markdown: fmt.Sprintf("If `%s` is present:", escapeInline(dependency))},
			nested,
		}})
	}

	children := []docmodel.Node{&docmodel.List{Items: items}}

	return g.tabItem(ctx, "required", "Required Properties", children), nil
}

// propertyRef links a property name to its properties entry when one is
// defined, and falls back to inline code otherwise.
func (g *Generator) propertyRef(ctx genContext, properties *Schema, name string) string {
	if properties.Has(name) {
		return fmt.Sprintf("[`%s`](#%s)", escapeInline(name), ctx.tag("properties", name))
	}

	return fmt.Sprintf("`%s`", escapeInline(name))
}

// asStrings converts list elements to their scalar text.
func asStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, scalarText(value))
	}

	return out
}

// rawSchemaTab renders the sanitized schema as YAML and JSON dropdowns behind
// identity badges.
func (g *Generator) rawSchemaTab(ctx genContext) (*docmodel.TabItem, error) {
	sanitized := g.cfg.Sanitize(ctx.schema)

	yamlText, err := ValueYAML(sanitized)
	if err != nil {
		return nil, err
	}

	jsonText, err := ValueJSON(sanitized)
	if err != nil {
		return nil, err
	}

	badges := make([]docmodel.Badge, 0, 2)
	if id := strings.TrimSpace(ctx.schema.Str("$id")); id != "" {
		title := fmt.Sprintf("The canonical identifier of this schema is '%s'.", id)
		badges = append(badges, *g.keywordBadge(ctx, "$id", id, title, "", nil))
	}

	badges = append(badges, docmodel.Badge{
		Label:   "JSONPath",
		Message: ctx.schemaPath,
		Title:   "JSONPath of this schema within its document.",
		Style:   g.cfg.BadgeBase,
	})

	children := []docmodel.Node{
		&docmodel.BadgeStrip{
			Badges:    badges,
			Classes:   g.cfg.InlineBadgeClasses,
			Separator: g.cfg.BadgeSeparator,
		},
		&docmodel.Dropdown{Title: "YAML", Children: []docmodel.Node{
			&docmodel.CodeBlock{Language: "yaml", Code: yamlText},
		}},
		&docmodel.Dropdown{Title: "JSON", Children: []docmodel.Node{
			&docmodel.CodeBlock{Language: "json", Code: jsonText},
		}},
	}

	return g.tabItem(ctx, rawTabKey, rawTabTitle, children), nil
}
