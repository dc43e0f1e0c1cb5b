// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Severity grades lint findings.
type Severity string

// Lint severities, ordered from least to most serious.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is one lint finding at a schema location.
type Issue struct {
	Severity Severity
	Path     string
	Keyword  string
	Message  string
}

// String renders the finding as a single diagnostic line.
func (issue Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", issue.Severity, issue.Path, issue.Message)
}

// CheckOptions adjusts lint behavior.
type CheckOptions struct {
	// Registry resolves cross-document $ref identifiers; nil downgrades those
	// findings to informational notes.
	Registry Registry
}

// Check walks schema in declared order and reports lint findings.
//
// Patterns are compiled with ECMA-262 semantics, matching what JSON Schema
// validators execute, so constructs like lookbehind pass while genuinely
// malformed expressions fail.
func Check(schema *Schema, opts CheckOptions) []Issue {
	c := &checker{root: schema, registry: opts.Registry}
	c.checkDraft(schema)
	c.walk(schema, "$")

	return c.issues
}

// HasErrors reports whether any issue carries the error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}

	return false
}

// checker carries lint state for one Check call.
type checker struct {
	root     *Schema
	registry Registry
	issues   []Issue
}

// report records one finding.
func (c *checker) report(severity Severity, path, keyword, message string) {
	c.issues = append(c.issues, Issue{Severity: severity, Path: path, Keyword: keyword, Message: message})
}

// checkDraft reports unrecognized $schema values at the document root.
func (c *checker) checkDraft(schema *Schema) {
	value := strings.TrimSpace(schema.Str("$schema"))
	if value == "" {
		return
	}

	if _, ok := DetectDraft(schema); !ok {
		c.report(SeverityInfo, "$", "$schema", fmt.Sprintf("unsupported $schema value %q", value))
	}
}

// walk lints one schema node and recurses into its sub-schemas.
func (c *checker) walk(schema *Schema, path string) {
	for keyword, value := range schema.All() {
		c.checkKeyword(schema, path, keyword, value)

		switch {
		case hasKeyword(schemaValueKeywords, keyword):
			if child, ok := value.(*Schema); ok {
				c.walk(child, path+"."+keyword)
			}
		case hasKeyword(schemaMapKeywords, keyword):
			object, _ := value.(*Schema)
			for name, raw := range object.All() {
				if child, ok := raw.(*Schema); ok {
					c.walk(child, path+"."+keyword+"."+name)
				}
			}
		case hasKeyword(schemaListKeywords, keyword):
			list, _ := value.([]any)
			for index, raw := range list {
				if child, ok := raw.(*Schema); ok {
					c.walk(child, fmt.Sprintf("%s.%s[%d]", path, keyword, index))
				}
			}
		}
	}
}

// checkKeyword lints one keyword on one node.
func (c *checker) checkKeyword(schema *Schema, path, keyword string, value any) {
	switch keyword {
	case "pattern":
		c.checkPattern(path, keyword, scalarText(value))
	case "patternProperties":
		object, _ := value.(*Schema)
		for pattern := range object.All() {
			c.checkPattern(path+"."+keyword, keyword, pattern)
		}
	case "$ref":
		c.checkRef(path, strings.TrimSpace(scalarText(value)))
	case "required":
		c.checkRequired(schema, path)
	default:
		c.checkCompanionLength(schema, path, keyword, value)
	}
}

// checkPattern reports patterns rejected by an ECMA-262 compile.
func (c *checker) checkPattern(path, keyword, pattern string) {
	if _, err := regexp2.Compile(pattern, regexp2.ECMAScript); err != nil {
		c.report(SeverityError, path, keyword, fmt.Sprintf("invalid pattern %q: %v", pattern, err))
	}
}

// checkRef reports unresolvable references.
func (c *checker) checkRef(path, ref string) {
	if strings.HasPrefix(ref, "#") {
		if _, err := resolveLocalPointer(c.root, ref); err != nil {
			c.report(SeverityError, path, "$ref", fmt.Sprintf("unresolved local reference %q", ref))
		}

		return
	}

	if c.registry == nil {
		c.report(SeverityInfo, path, "$ref", fmt.Sprintf("reference %q not checked without a registry", ref))

		return
	}

	if _, err := c.registry.Lookup(ref); err != nil {
		c.report(SeverityError, path, "$ref", fmt.Sprintf("unresolved reference %q", ref))
	}
}

// checkRequired reports required names missing from properties.
func (c *checker) checkRequired(schema *Schema, path string) {
	properties := schema.Child("properties")
	for _, name := range schema.StrList("required") {
		if properties.Has(name) {
			continue
		}

		c.report(SeverityInfo, path, "required", fmt.Sprintf("required property %q is not defined in properties", name))
	}
}

// checkCompanionLength reports description arrays longer than their keyword array.
func (c *checker) checkCompanionLength(schema *Schema, path, keyword string, value any) {
	base := strings.TrimSuffix(keyword, DefaultDescriptionKeySuffix)
	if base == keyword || base == "" {
		return
	}

	if _, known := knownSchemaKeywords[base]; !known {
		return
	}

	descriptions, ok := value.([]any)
	if !ok {
		return
	}

	values := schema.List(base)
	if !schema.Has(base) || len(descriptions) <= len(values) {
		return
	}

	message := fmt.Sprintf("%s has %d entries but %s has %d values", keyword, len(descriptions), base, len(values))
	c.report(SeverityWarning, path, keyword, message)
}

// hasKeyword reports set membership in a keyword table.
func hasKeyword(set map[string]struct{}, keyword string) bool {
	_, ok := set[keyword]
	return ok
}
