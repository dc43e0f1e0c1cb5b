// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"strings"

	"github.com/schemark/schemark/docmodel"
)

const (
	// DefaultClassPrefix prefixes generated CSS class names.
	DefaultClassPrefix = "jsonschema-"
	// DefaultRefTagPrefix namespaces cross-document reference anchors.
	DefaultRefTagPrefix = "jsonschema-ref"
	// DefaultTitleKeySuffix selects companion title keys like "enum_title".
	DefaultTitleKeySuffix = "_title"
	// DefaultDescriptionKeySuffix selects companion description keys like "enum_description".
	DefaultDescriptionKeySuffix = "_description"
	// DefaultValueCodeLanguage tags serialized value code blocks.
	DefaultValueCodeLanguage = "yaml"
	// defaultBadgeSeparator is the space count between adjacent badges.
	defaultBadgeSeparator = 2
)

// Default badge palette.
var (
	defaultBadgeBase        = docmodel.BadgeStyle{Color: "#0B3C75", Style: "flat-square"}
	defaultBadgePermissive  = docmodel.BadgeStyle{Color: "#00802B"}
	defaultBadgeRestrictive = docmodel.BadgeStyle{Color: "#AF1F10"}
)

// KeyTitleFunc maps a keyword name to its human badge label.
type KeyTitleFunc func(key string) string

// ValueCodeFunc serializes one schema value for code block display.
type ValueCodeFunc func(value any) (string, error)

// RefTagFunc derives the cross-document anchor tag for a referenced schema.
type RefTagFunc func(target *Schema) string

// RefNameFunc derives the display name for a referenced schema.
type RefNameFunc func(target *Schema) string

// SanitizeFunc strips internal companion keys from a schema before raw display.
type SanitizeFunc func(schema *Schema) *Schema

// FormatDescriptionFunc post-processes description prose before rendering.
type FormatDescriptionFunc func(text string) string

// BadgeOverride customizes one keyword's badge label and style.
type BadgeOverride struct {
	Label string
	Style docmodel.BadgeStyle
}

// Config is the immutable policy set applied to every Generate call.
//
// The zero value selects the documented defaults; NewGenerator resolves them
// once and the generator never changes afterwards.
type Config struct {
	// Registry resolves $ref identifiers. Required only when schemas use $ref.
	Registry Registry

	// KeyTitle converts keyword names into badge labels and tab titles.
	KeyTitle KeyTitleFunc
	// ValueCode serializes keyword values for tab code blocks.
	ValueCode ValueCodeFunc
	// ValueCodeLanguage tags the code blocks produced by ValueCode.
	ValueCodeLanguage string

	// ClassPrefix prefixes every generated CSS class name.
	ClassPrefix string
	// RefTagPrefix namespaces anchors produced for $ref badges.
	RefTagPrefix string
	// RefTag derives the anchor tag of a referenced schema; defaults to its $id.
	RefTag RefTagFunc
	// RefName derives the display name of a referenced schema; defaults to its
	// title, falling back to its $id.
	RefName RefNameFunc

	// TitleKeyPrefix and TitleKeySuffix select companion tooltip/intro keys.
	TitleKeyPrefix string
	TitleKeySuffix string
	// DescriptionKeyPrefix and DescriptionKeySuffix select companion description keys.
	DescriptionKeyPrefix string
	DescriptionKeySuffix string

	// BadgeBase styles every badge before polarity and per-keyword overrides.
	BadgeBase docmodel.BadgeStyle
	// BadgePermissive styles boolean badges whose value loosens validation.
	BadgePermissive docmodel.BadgeStyle
	// BadgeRestrictive styles boolean badges whose value tightens validation.
	BadgeRestrictive docmodel.BadgeStyle
	// BadgeOverrides replaces labels and styles per keyword; overrides win over polarity.
	BadgeOverrides map[string]BadgeOverride
	// BadgeSeparator is the space count between adjacent badges.
	BadgeSeparator int

	// HeaderBadgeClasses wraps the top badge strip of a body.
	HeaderBadgeClasses []string
	// InlineBadgeClasses wraps condensed and raw-tab badge strips.
	InlineBadgeClasses []string

	// Sanitize strips companion keys before the raw schema tab; defaults to the
	// companion-key convention above plus the summary keyword.
	Sanitize SanitizeFunc
	// FormatDescription post-processes description prose; nil keeps it verbatim.
	FormatDescription FormatDescriptionFunc
}

// withDefaults resolves zero-value fields to the documented defaults.
func (cfg Config) withDefaults() Config {
	if cfg.KeyTitle == nil {
		cfg.KeyTitle = KeyTitleCamel
	}

	if cfg.ValueCode == nil {
		cfg.ValueCode = ValueYAML
		if cfg.ValueCodeLanguage == "" {
			cfg.ValueCodeLanguage = DefaultValueCodeLanguage
		}
	}

	if cfg.ClassPrefix == "" {
		cfg.ClassPrefix = DefaultClassPrefix
	}

	if cfg.RefTagPrefix == "" {
		cfg.RefTagPrefix = DefaultRefTagPrefix
	}

	if cfg.RefTag == nil {
		cfg.RefTag = func(target *Schema) string { return strings.TrimSpace(target.Str("$id")) }
	}

	if cfg.RefName == nil {
		cfg.RefName = func(target *Schema) string {
			if title := strings.TrimSpace(target.Str("title")); title != "" {
				return title
			}

			return strings.TrimSpace(target.Str("$id"))
		}
	}

	if cfg.TitleKeyPrefix == "" && cfg.TitleKeySuffix == "" {
		cfg.TitleKeySuffix = DefaultTitleKeySuffix
	}

	if cfg.DescriptionKeyPrefix == "" && cfg.DescriptionKeySuffix == "" {
		cfg.DescriptionKeySuffix = DefaultDescriptionKeySuffix
	}

	if cfg.BadgeBase == (docmodel.BadgeStyle{}) {
		cfg.BadgeBase = defaultBadgeBase
	}

	if cfg.BadgePermissive == (docmodel.BadgeStyle{}) {
		cfg.BadgePermissive = defaultBadgePermissive
	}

	if cfg.BadgeRestrictive == (docmodel.BadgeStyle{}) {
		cfg.BadgeRestrictive = defaultBadgeRestrictive
	}

	if cfg.BadgeOverrides == nil {
		cfg.BadgeOverrides = defaultBadgeOverrides()
	}

	if cfg.BadgeSeparator <= 0 {
		cfg.BadgeSeparator = defaultBadgeSeparator
	}

	if cfg.HeaderBadgeClasses == nil {
		cfg.HeaderBadgeClasses = []string{classNameFor(cfg.ClassPrefix, "badge-header")}
	}

	if cfg.InlineBadgeClasses == nil {
		cfg.InlineBadgeClasses = []string{classNameFor(cfg.ClassPrefix, "badge-inline")}
	}

	if cfg.Sanitize == nil {
		conventions := [][2]string{
			{cfg.TitleKeyPrefix, cfg.TitleKeySuffix},
			{cfg.DescriptionKeyPrefix, cfg.DescriptionKeySuffix},
		}
		cfg.Sanitize = func(schema *Schema) *Schema {
			return stripCompanionKeys(schema, conventions)
		}
	}

	return cfg
}

// defaultBadgeOverrides returns per-keyword label and color overrides.
func defaultBadgeOverrides() map[string]BadgeOverride {
	return map[string]BadgeOverride{
		"type":     {Label: "Type"},
		"$id":      {Label: "ID"},
		"$ref":     {Label: "Ref"},
		"$defs":    {Label: "Defs"},
		"allOf":    {Label: "All Of"},
		"anyOf":    {Label: "Any Of"},
		"required": {Style: docmodel.BadgeStyle{Color: "#AF1F10"}},
	}
}

// titleKeyFor returns the companion title key for one keyword.
func (cfg *Config) titleKeyFor(keyword string) string {
	return cfg.TitleKeyPrefix + keyword + cfg.TitleKeySuffix
}

// descriptionKeyFor returns the companion description key for one keyword.
func (cfg *Config) descriptionKeyFor(keyword string) string {
	return cfg.DescriptionKeyPrefix + keyword + cfg.DescriptionKeySuffix
}

// className builds one prefixed CSS class name.
func (g *Generator) className(parts ...string) string {
	return classNameFor(g.cfg.ClassPrefix, parts...)
}

// formatDescription applies the configured description hook.
func (g *Generator) formatDescription(text string) string {
	if g.cfg.FormatDescription == nil {
		return text
	}

	return g.cfg.FormatDescription(text)
}
