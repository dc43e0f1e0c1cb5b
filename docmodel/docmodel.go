// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

/*
Package docmodel defines the structured document nodes emitted by the schema
fragment generator and renders them to deterministic Markdown.

Block structure (tab sets, dropdowns, lists, definition lists, containers) is
modeled as nodes; inline markup such as code spans and links travels as
pre-rendered Markdown in Raw fragments. Rendering targets Material-flavored
Markdown: content tabs, collapsible details blocks, shields.io static badges
and classed HTML containers with markdown passthrough.
*/
package docmodel

// Node is one block element of a generated document body.
type Node interface {
	markdownLines(r *renderer) []string
}

// Raw is a pre-rendered Markdown fragment emitted verbatim.
type Raw struct {
	Markdown string
}

// Paragraph is one prose block with an optional anchor and classes.
type Paragraph struct {
	Text    string
	Anchor  string
	Classes []string
}

// Heading is one Markdown heading with an optional explicit anchor.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// ThematicBreak is a horizontal separator between body regions.
type ThematicBreak struct{}

// CodeBlock is one fenced code block.
type CodeBlock struct {
	Language string
	Code     string
}

// Dropdown is one collapsible details block.
type Dropdown struct {
	Title    string
	Children []Node
}

// ListItem is one list entry holding nested block content.
type ListItem struct {
	Children []Node
}

// List is an ordered or unordered list of items.
type List struct {
	Ordered bool
	Items   []ListItem
}

// DefinitionEntry is one term/details pair of a definition list.
type DefinitionEntry struct {
	Term    Node
	Details []Node
}

// DefinitionList renders classed term/details pairs as an HTML definition block.
type DefinitionList struct {
	Class        string
	TermClass    string
	DetailsClass string
	Entries      []DefinitionEntry
}

// TabItem is one named content panel of a tab set.
type TabItem struct {
	Key      string
	Title    string
	Anchor   string
	Classes  []string
	Children []Node
}

// TabSet is the ordered collection of tabs generated for one schema node.
type TabSet struct {
	Class string
	Items []TabItem
}

// Container is a classed block wrapper around nested nodes.
type Container struct {
	Classes  []string
	Children []Node
}
