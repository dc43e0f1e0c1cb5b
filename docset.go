// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/schemark/schemark/docmodel"
)

const (
	// DefaultMaxDepth bounds recursive section generation.
	DefaultMaxDepth = 20
	// DefaultPageTagPrefix namespaces anchors when options leave it empty.
	DefaultPageTagPrefix = "jsonschema"
	// rootSchemaPath is the JSONPath of each document root.
	rootSchemaPath = "$"
	// maxHeadingLevel caps nested section heading depth.
	maxHeadingLevel = 6
)

// DocSetOptions adjusts multi-schema page generation.
type DocSetOptions struct {
	// TagPrefix namespaces anchors; the page slug is appended per schema so
	// anchors stay unique across pages.
	TagPrefix string
	// MaxDepth bounds recursive section nesting; zero selects DefaultMaxDepth.
	MaxDepth int
	// WrapWidth wraps description paragraphs; zero selects the default width.
	WrapWidth int
	// ListMarker selects the unordered list marker, "-" or "*".
	ListMarker string
	// SanitizeHTML pipes prose through a bluemonday UGC policy when rendering.
	SanitizeHTML bool
	// ExampleMode appends an example document section when set.
	ExampleMode ExampleMode
	// ExampleFormat selects the example section encoding; defaults to JSON.
	ExampleFormat ExampleFormat
	// TemplateName selects a built-in page template; defaults to "page".
	TemplateName string
	// TemplateText overrides the page template with custom template source.
	TemplateText string
}

// Section is one heading-scoped fragment of a generated page.
type Section struct {
	// Level is the markdown heading level, capped at 6.
	Level int
	// Title is the heading text.
	Title string
	// Anchor is the slugified anchor matching generator cross-links.
	Anchor string
	// SchemaPath is the section schema's JSONPath within its document.
	SchemaPath string
	// InstancePath is the JSONPath of instances the section schema validates.
	InstancePath string

	Body              *Body
	Properties        *docmodel.DefinitionList
	PatternProperties *docmodel.DefinitionList
	Conditions        *docmodel.DefinitionList
}

// Page is one rendered document for one input schema.
type Page struct {
	Title string
	Slug  string
	// TagPrefix is the effective anchor namespace of this page.
	TagPrefix string
	// RefAnchor is the cross-document anchor targeted by $ref badges, empty
	// when the schema has no $id.
	RefAnchor string
	// ExampleCode and ExampleLanguage hold the optional example section body.
	ExampleCode     string
	ExampleLanguage string

	Sections []Section

	schema *Schema
}

// Schema returns the page's source schema node.
func (page *Page) Schema() *Schema {
	return page.schema
}

// docEntry is one collected schema pending page generation.
type docEntry struct {
	schema *Schema
	name   string
}

// DocSet collects schemas, fills the shared registry and generates pages.
type DocSet struct {
	cfg       Config
	opts      DocSetOptions
	generator *Generator
	registry  *MemoryRegistry
	entries   []docEntry
	warnings  []string
}

// NewDocSet builds a document pipeline over one generator configuration.
//
// When cfg carries no registry the set installs an in-memory one and fills it
// with every $id-bearing schema and $defs entry it collects.
func NewDocSet(cfg Config, opts DocSetOptions) *DocSet {
	if opts.TagPrefix == "" {
		opts.TagPrefix = DefaultPageTagPrefix
	}

	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	if opts.WrapWidth <= 0 {
		opts.WrapWidth = defaultWrapWidth
	}

	if opts.ListMarker == "" {
		opts.ListMarker = defaultListMarker
	}

	if opts.ExampleFormat == "" {
		opts.ExampleFormat = ExampleFormatJSON
	}

	set := &DocSet{opts: opts}

	set.registry, _ = cfg.Registry.(*MemoryRegistry)
	if cfg.Registry == nil {
		set.registry = NewMemoryRegistry()
		cfg.Registry = set.registry
	}

	if cfg.FormatDescription == nil {
		cfg.FormatDescription = func(text string) string {
			return formatDescriptionMarkdown(text, opts.WrapWidth, opts.ListMarker)
		}
	}

	set.cfg = cfg.withDefaults()
	set.generator = NewGenerator(set.cfg)

	return set
}

// Generator returns the generator shared by every page of the set.
func (set *DocSet) Generator() *Generator {
	return set.generator
}

// Warnings returns non-fatal findings collected while adding schemas.
func (set *DocSet) Warnings() []string {
	return append([]string(nil), set.warnings...)
}

// AddSchema collects one parsed schema under a fallback display name.
func (set *DocSet) AddSchema(schema *Schema, name string) error {
	if _, ok := DetectDraft(schema); !ok {
		set.warnings = append(set.warnings, fmt.Sprintf("unsupported $schema value %q", schema.Str("$schema")))
	}

	if err := set.register(schema); err != nil {
		return err
	}

	set.entries = append(set.entries, docEntry{schema: schema, name: strings.TrimSpace(name)})

	return nil
}

// AddSchemaBytes parses and collects one JSON or YAML schema document.
func (set *DocSet) AddSchemaBytes(data []byte, name string) error {
	schema, err := ParseSchema(data)
	if err != nil {
		return err
	}

	return set.AddSchema(schema, name)
}

// AddSchemaFile reads, parses and collects one schema document from disk. The
// file base name without extension becomes the fallback display name.
func (set *DocSet) AddSchemaFile(path string) error {
	schema, err := ParseSchemaFile(path)
	if err != nil {
		return err
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return set.AddSchema(schema, name)
}

// register fills the shared registry with the schema and its $defs entries.
// Schemas without $id stay unregistered; re-registering a known id is not an
// error so one document can be added through several sources.
func (set *DocSet) register(schema *Schema) error {
	if set.registry == nil {
		return nil
	}

	if id := strings.TrimSpace(schema.Str("$id")); id != "" {
		if _, err := set.registry.Lookup(id); err != nil {
			if err := set.registry.Add(schema); err != nil {
				return err
			}
		}
	}

	for _, raw := range schema.Child("$defs").All() {
		def, ok := childSchema(raw)
		if !ok {
			continue
		}

		if err := set.register(def); err != nil {
			return err
		}
	}

	return nil
}

// Pages generates one page per collected schema, in collection order.
func (set *DocSet) Pages() ([]Page, error) {
	pages := make([]Page, 0, len(set.entries))
	for _, entry := range set.entries {
		page, err := set.buildPage(entry)
		if err != nil {
			return nil, err
		}

		pages = append(pages, page)
	}

	return pages, nil
}

// buildPage generates the section tree for one collected schema.
func (set *DocSet) buildPage(entry docEntry) (Page, error) {
	title := pageTitle(entry.schema, entry.name)
	slug := Slugify(title)

	page := Page{
		Title:     title,
		Slug:      slug,
		TagPrefix: set.opts.TagPrefix + "-" + slug,
		schema:    entry.schema,
	}

	if id := strings.TrimSpace(entry.schema.Str("$id")); id != "" {
		page.RefAnchor = Slugify(set.cfg.RefTagPrefix + "-" + set.cfg.RefTag(entry.schema))
	}

	if err := set.walkSections(&page, entry.schema, page.TagPrefix, rootSchemaPath, rootSchemaPath, title, 1, 0); err != nil {
		return Page{}, err
	}

	if set.opts.ExampleMode != "" {
		if err := set.attachExample(&page, entry.schema); err != nil {
			return Page{}, err
		}
	}

	return page, nil
}

// attachExample generates the optional example document section body.
func (set *DocSet) attachExample(page *Page, schema *Schema) error {
	data, err := Example(schema, set.opts.ExampleMode, set.opts.ExampleFormat)
	if err != nil {
		return err
	}

	page.ExampleCode = strings.TrimRight(string(data), "\n")
	page.ExampleLanguage = string(set.opts.ExampleFormat)

	return nil
}

// walkSections appends the section for one schema node and recurses into its
// named sub-schemas depth-first in declared order.
func (set *DocSet) walkSections(page *Page, schema *Schema, tagPrefix, schemaPath, instancePath, title string, level, depth int) error {
	if depth > set.opts.MaxDepth {
		return fmt.Errorf("%w: %d levels at %q", ErrDepthExceeded, depth, schemaPath)
	}

	section, err := set.buildSection(schema, tagPrefix, schemaPath, instancePath, title, level)
	if err != nil {
		return err
	}

	page.Sections = append(page.Sections, section)

	childLevel := level + 1
	if childLevel > maxHeadingLevel {
		childLevel = maxHeadingLevel
	}

	recurse := func(sub *Schema, subPath, subInstance, subTitle string) error {
		return set.walkSections(page, sub, tagPrefix, subPath, subInstance, subTitle, childLevel, depth+1)
	}

	for name, raw := range schema.Child("properties").All() {
		sub, ok := childSchema(raw)
		if !ok {
			continue
		}

		if err := recurse(sub, schemaPath+".properties."+name, childInstancePath(instancePath, name), name); err != nil {
			return err
		}
	}

	for name, raw := range schema.Child("patternProperties").All() {
		sub, ok := childSchema(raw)
		if !ok {
			continue
		}

		if err := recurse(sub, schemaPath+".patternProperties."+name, childPatternInstancePath(instancePath, name), name); err != nil {
			return err
		}
	}

	for name, raw := range schema.Child("$defs").All() {
		sub, ok := childSchema(raw)
		if !ok {
			continue
		}

		subTitle := pageTitle(sub, name)
		if err := recurse(sub, schemaPath+".$defs."+name, rootSchemaPath, subTitle); err != nil {
			return err
		}
	}

	for _, keyword := range conditionKeywords {
		sub, ok := childSchema(mustGet(schema, keyword))
		if !ok {
			continue
		}

		if err := recurse(sub, schemaPath+"."+keyword, instancePath, set.cfg.KeyTitle(keyword)); err != nil {
			return err
		}
	}

	return nil
}

// buildSection generates the body and definition lists for one schema node.
func (set *DocSet) buildSection(schema *Schema, tagPrefix, schemaPath, instancePath, title string, level int) (Section, error) {
	body, err := set.generator.Generate(schema, schemaPath, tagPrefix, instancePath)
	if err != nil {
		return Section{}, err
	}

	properties, err := set.generator.GenerateProperties(schema, schemaPath, tagPrefix, instancePath)
	if err != nil {
		return Section{}, err
	}

	patterns, err := set.generator.GeneratePatternProperties(schema, schemaPath, tagPrefix, instancePath)
	if err != nil {
		return Section{}, err
	}

	conditions, err := set.generator.GenerateIfThenElse(schema, schemaPath, tagPrefix, instancePath)
	if err != nil {
		return Section{}, err
	}

	return Section{
		Level:             level,
		Title:             title,
		Anchor:            tagNameFor(tagPrefix, schemaPath),
		SchemaPath:        schemaPath,
		InstancePath:      instancePath,
		Body:              body,
		Properties:        properties,
		PatternProperties: patterns,
		Conditions:        conditions,
	}, nil
}

// pageTitle derives the display title of one schema.
func pageTitle(schema *Schema, fallback string) string {
	if title := sanitizeText(schema.Str("title")); title != "" {
		return title
	}

	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}

	if id := strings.TrimSpace(schema.Str("$id")); id != "" {
		return id
	}

	return "Schema"
}
