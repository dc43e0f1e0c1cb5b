// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package docmodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// defaultListMarker is the unordered list marker used when options leave it empty.
	defaultListMarker = "-"
	// tabContentIndent indents tab and dropdown content per Material block syntax.
	tabContentIndent = "    "
)

// RenderOptions controls Markdown rendering of document nodes.
type RenderOptions struct {
	// ListMarker selects the unordered list marker, "-" or "*".
	ListMarker string
	// SanitizeHTML pipes prose fragments through a bluemonday UGC policy.
	SanitizeHTML bool
}

// renderer carries per-render options shared by node markdown builders.
type renderer struct {
	options RenderOptions
	policy  *bluemonday.Policy
}

// newRenderer builds one renderer for a Render call.
func newRenderer(options RenderOptions) *renderer {
	switch strings.TrimSpace(options.ListMarker) {
	case "*":
		options.ListMarker = "*"
	default:
		options.ListMarker = defaultListMarker
	}

	r := &renderer{options: options}
	if options.SanitizeHTML {
		r.policy = bluemonday.UGCPolicy()
	}

	return r
}

// sanitize filters prose text through the configured HTML policy.
func (r *renderer) sanitize(text string) string {
	if r.policy == nil {
		return text
	}

	return r.policy.Sanitize(text)
}

// Render renders nodes to Markdown with one blank line between blocks.
func Render(nodes []Node, options RenderOptions) string {
	return strings.Join(renderBlocks(newRenderer(options), nodes), "\n")
}

// renderBlocks renders nodes into lines separated by single blank lines.
func renderBlocks(r *renderer, nodes []Node) []string {
	out := make([]string, 0, len(nodes)*2)
	for _, node := range nodes {
		if node == nil {
			continue
		}

		lines := node.markdownLines(r)
		if len(lines) == 0 {
			continue
		}

		if len(out) > 0 {
			out = append(out, "")
		}

		out = append(out, lines...)
	}

	return out
}

// indentLines prefixes non-empty lines with the indent string.
func indentLines(lines []string, indent string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}

		out = append(out, indent+line)
	}

	return out
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}

// attrSuffix builds an attribute-list suffix for anchored or classed blocks.
func attrSuffix(anchor string, classes []string) string {
	parts := make([]string, 0, 1+len(classes))
	if anchor != "" {
		parts = append(parts, "#"+anchor)
	}

	for _, class := range classes {
		if class == "" {
			continue
		}

		parts = append(parts, "."+class)
	}

	if len(parts) == 0 {
		return ""
	}

	return " {: " + strings.Join(parts, " ") + " }"
}

// markdownLines renders the raw fragment verbatim.
func (raw *Raw) markdownLines(r *renderer) []string {
	text := strings.TrimRight(raw.Markdown, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	return splitLines(r.sanitize(text))
}

// markdownLines renders one paragraph with optional attribute list.
func (paragraph *Paragraph) markdownLines(r *renderer) []string {
	text := strings.TrimSpace(r.sanitize(paragraph.Text))
	if text == "" {
		return nil
	}

	lines := splitLines(text)
	lines[len(lines)-1] += attrSuffix(paragraph.Anchor, paragraph.Classes)
	return lines
}

// markdownLines renders one heading line.
func (heading *Heading) markdownLines(r *renderer) []string {
	level := heading.Level
	if level < 1 {
		level = 1
	}

	if level > 6 {
		level = 6
	}

	text := strings.TrimSpace(r.sanitize(heading.Text))
	return []string{strings.Repeat("#", level) + " " + text + attrSuffix(heading.Anchor, nil)}
}

// markdownLines renders a horizontal separator.
func (*ThematicBreak) markdownLines(_ *renderer) []string {
	return []string{"---"}
}

// markdownLines renders one fenced code block.
func (code *CodeBlock) markdownLines(_ *renderer) []string {
	fence := codeFence(code.Code)
	out := make([]string, 0, 3)
	out = append(out, fence+code.Language)
	if code.Code != "" {
		out = append(out, splitLines(code.Code)...)
	}

	return append(out, fence)
}

// codeFence picks a backtick fence longer than any backtick run in the code.
func codeFence(code string) string {
	longest := 0
	current := 0
	for _, r := range code {
		if r == '`' {
			current++
			if current > longest {
				longest = current
			}

			continue
		}

		current = 0
	}

	size := 3
	if longest >= size {
		size = longest + 1
	}

	return strings.Repeat("`", size)
}

// markdownLines renders one collapsible details block.
func (dropdown *Dropdown) markdownLines(r *renderer) []string {
	body := renderBlocks(r, dropdown.Children)
	if len(body) == 0 {
		return nil
	}

	out := make([]string, 0, len(body)+2)
	out = append(out, fmt.Sprintf("??? note %q", dropdown.Title), "")
	return append(out, indentLines(body, tabContentIndent)...)
}

// markdownLines renders one ordered or unordered list.
func (list *List) markdownLines(r *renderer) []string {
	if len(list.Items) == 0 {
		return nil
	}

	out := make([]string, 0, len(list.Items))
	for index, item := range list.Items {
		marker := r.options.ListMarker
		if list.Ordered {
			marker = strconv.Itoa(index+1) + "."
		}

		body := renderBlocks(r, item.Children)
		if len(body) == 0 {
			out = append(out, marker)
			continue
		}

		out = append(out, marker+" "+body[0])
		if len(body) > 1 {
			out = append(out, indentLines(body[1:], strings.Repeat(" ", len(marker)+1))...)
		}
	}

	return out
}

// markdownLines renders classed term/details pairs as an HTML definition block.
func (deflist *DefinitionList) markdownLines(r *renderer) []string {
	if len(deflist.Entries) == 0 {
		return nil
	}

	out := make([]string, 0, len(deflist.Entries)*6+4)
	if deflist.Class != "" {
		out = append(out, fmt.Sprintf("<div class=%q markdown>", deflist.Class))
	}

	out = append(out, "<dl markdown>")
	for _, entry := range deflist.Entries {
		out = append(out, openTag("dt", deflist.TermClass))
		if entry.Term != nil {
			out = append(out, entry.Term.markdownLines(r)...)
		}

		out = append(out, "</dt>", openTag("dd", deflist.DetailsClass))
		out = append(out, renderBlocks(r, entry.Details)...)
		out = append(out, "</dd>")
	}

	out = append(out, "</dl>")
	if deflist.Class != "" {
		out = append(out, "</div>")
	}

	return out
}

// openTag builds one optionally classed opening HTML tag with markdown passthrough.
func openTag(tag, class string) string {
	if class == "" {
		return "<" + tag + " markdown>"
	}

	return fmt.Sprintf("<%s class=%q markdown>", tag, class)
}

// markdownLines renders one tab panel in Material content-tab syntax.
func (tab *TabItem) markdownLines(r *renderer) []string {
	out := make([]string, 0, 8)
	out = append(out, fmt.Sprintf("=== %q", tab.Title), "")

	body := make([]string, 0, 8)
	if tab.Anchor != "" {
		class := ""
		if len(tab.Classes) > 0 {
			class = fmt.Sprintf(" class=%q", strings.Join(tab.Classes, " "))
		}

		body = append(body, fmt.Sprintf("<span id=%q%s></span>", tab.Anchor, class), "")
	}

	body = append(body, renderBlocks(r, tab.Children)...)
	return append(out, indentLines(body, tabContentIndent)...)
}

// markdownLines renders the tab set inside one classed container.
func (tabs *TabSet) markdownLines(r *renderer) []string {
	if tabs == nil || len(tabs.Items) == 0 {
		return nil
	}

	body := make([]string, 0, len(tabs.Items)*8)
	for index := range tabs.Items {
		if len(body) > 0 {
			body = append(body, "")
		}

		body = append(body, tabs.Items[index].markdownLines(r)...)
	}

	if tabs.Class == "" {
		return body
	}

	out := make([]string, 0, len(body)+4)
	out = append(out, fmt.Sprintf("<div class=%q markdown>", tabs.Class), "")
	out = append(out, body...)
	return append(out, "", "</div>")
}

// markdownLines renders a classed wrapper around nested nodes.
func (container *Container) markdownLines(r *renderer) []string {
	body := renderBlocks(r, container.Children)
	if len(body) == 0 {
		return nil
	}

	if len(container.Classes) == 0 {
		return body
	}

	out := make([]string, 0, len(body)+4)
	out = append(out, fmt.Sprintf("<div class=%q markdown>", strings.Join(container.Classes, " ")), "")
	out = append(out, body...)
	return append(out, "", "</div>")
}
