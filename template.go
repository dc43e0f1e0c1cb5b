// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/schemark/schemark/docmodel"
)

const (
	// TemplatePage is the built-in per-schema page template name.
	TemplatePage = "page"
	// TemplateIndex is the built-in page index template name.
	TemplateIndex = "index"
)

// templateFS stores built-in markdown templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template names to embedded file paths.
var builtInTemplateFiles = map[string]string{
	TemplatePage:  "templates/page.md.gotmpl",
	TemplateIndex: "templates/index.md.gotmpl",
}

// BuiltinTemplate returns the text of one built-in template.
func BuiltinTemplate(name string) (string, error) {
	path, ok := builtInTemplateFiles[normalizeTemplateName(name)]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrUnknownBuiltinTemplate, name, err)
	}

	return string(data), nil
}

// BuiltinTemplateNames returns the sorted built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// resolveTemplate parses custom template text or the selected built-in template.
func resolveTemplate(name, text string) (*template.Template, error) {
	if text = strings.TrimSpace(text); text != "" {
		parsed, err := template.New("custom").Funcs(templateFuncs()).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseBuiltinTemplate, err)
		}

		return parsed, nil
	}

	name = normalizeTemplateName(name)
	if name == "" {
		name = TemplatePage
	}

	text, err := BuiltinTemplate(name)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, name, err)
	}

	return parsed, nil
}

// templateFuncs merges sprig helpers with local markdown utilities.
func templateFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["hashes"] = func(level int) string {
		if level < 1 {
			level = 1
		}

		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}

		return strings.Repeat("#", level)
	}
	funcs["slug"] = Slugify

	return funcs
}

// pageView is the template payload for one rendered page.
type pageView struct {
	Title     string
	RefAnchor string
	Sections  []sectionView
	Example   *exampleView
}

// sectionView is one pre-rendered section of a page.
type sectionView struct {
	Level   int
	Title   string
	Anchor  string
	Content string
}

// exampleView is the optional example document block of a page.
type exampleView struct {
	Language string
	Code     string
}

// indexView is the template payload for the page index.
type indexView struct {
	Title string
	Pages []indexEntryView
}

// indexEntryView is one page link of the index.
type indexEntryView struct {
	Title string
	Slug  string
}

// RenderMarkdown renders one generated page to a full Markdown document
// through the configured page template.
func (set *DocSet) RenderMarkdown(page Page) (string, error) {
	parsed, err := resolveTemplate(set.opts.TemplateName, set.opts.TemplateText)
	if err != nil {
		return "", err
	}

	view := pageView{
		Title:     page.Title,
		RefAnchor: page.RefAnchor,
		Sections:  make([]sectionView, 0, len(page.Sections)),
	}

	options := docmodel.RenderOptions{
		ListMarker:   set.opts.ListMarker,
		SanitizeHTML: set.opts.SanitizeHTML,
	}

	for _, section := range page.Sections {
		view.Sections = append(view.Sections, sectionView{
			Level:   section.Level,
			Title:   section.Title,
			Anchor:  section.Anchor,
			Content: docmodel.Render(sectionNodes(section), options),
		})
	}

	if page.ExampleCode != "" {
		view.Example = &exampleView{Language: page.ExampleLanguage, Code: page.ExampleCode}
	}

	return executeMarkdownTemplate(parsed, view)
}

// RenderIndex renders the linked page listing through the index template.
func (set *DocSet) RenderIndex(title string, pages []Page) (string, error) {
	parsed, err := resolveTemplate(TemplateIndex, "")
	if err != nil {
		return "", err
	}

	if title = sanitizeText(title); title == "" {
		title = "Schema Reference"
	}

	view := indexView{Title: title, Pages: make([]indexEntryView, 0, len(pages))}
	for _, page := range pages {
		view.Pages = append(view.Pages, indexEntryView{Title: page.Title, Slug: page.Slug})
	}

	return executeMarkdownTemplate(parsed, view)
}

// executeMarkdownTemplate runs one parsed template and normalizes its output.
func executeMarkdownTemplate(parsed *template.Template, view any) (string, error) {
	var out bytes.Buffer
	if err := parsed.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// sectionNodes assembles the renderable block sequence of one section.
func sectionNodes(section Section) []docmodel.Node {
	nodes := section.Body.Nodes()

	subLevel := section.Level + 1
	if subLevel > maxHeadingLevel {
		subLevel = maxHeadingLevel
	}

	if section.Properties != nil {
		nodes = append(nodes, &docmodel.Heading{Level: subLevel, Text: "Properties"}, section.Properties)
	}

	if section.PatternProperties != nil {
		nodes = append(nodes, &docmodel.Heading{Level: subLevel, Text: "Pattern Properties"}, section.PatternProperties)
	}

	if section.Conditions != nil {
		nodes = append(nodes, &docmodel.Heading{Level: subLevel, Text: "Conditional Schemas"}, section.Conditions)
	}

	return nodes
}
