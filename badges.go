// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schemark/schemark/docmodel"
)

// presenceMarker is the badge message for keywords reported without a value.
const presenceMarker = "Defined"

// polarity values select permissive or restrictive badge styling.
var (
	permissive  = true
	restrictive = false
)

// badgeRule pairs one keyword with its badge builder.
type badgeRule struct {
	Keyword string
	Build   func(g *Generator, ctx genContext, value any) (*docmodel.Badge, error)
}

// badgeRules is the keyword dispatch table for header badges; table order is
// badge output order.
var badgeRules = []badgeRule{
	{"deprecated", badgeDeprecated},
	{"readOnly", badgeReadOnly},
	{"writeOnly", badgeWriteOnly},
	{"type", badgeType},
	{"format", badgeFormat},
	{"contentMediaType", badgeContentMediaType},
	{"contentEncoding", badgeContentEncoding},
	{"minLength", badgeMinLength},
	{"maxLength", badgeMaxLength},
	{"minimum", badgeMinimum},
	{"exclusiveMinimum", badgeExclusiveMinimum},
	{"maximum", badgeMaximum},
	{"exclusiveMaximum", badgeExclusiveMaximum},
	{"multipleOf", badgeMultipleOf},
	{"minItems", badgeMinItems},
	{"maxItems", badgeMaxItems},
	{"minContains", badgeMinContains},
	{"maxContains", badgeMaxContains},
	{"uniqueItems", badgeUniqueItems},
	{"unevaluatedItems", badgeUnevaluatedItems},
	{"minProperties", badgeMinProperties},
	{"maxProperties", badgeMaxProperties},
	{"unevaluatedProperties", badgeUnevaluatedProperties},
	{"default", badgeDefault},
	{"required", badgeRequired},
	{"dependentRequired", badgeDependentRequired},
	{"const", badgeConst},
	{"pattern", badgePattern},
	{"enum", badgeEnum},
	{"contentSchema", badgeContentSchema},
	{"prefixItems", badgePrefixItems},
	{"$ref", badgeRef},
}

// headerBadges builds the ordered badge run for one schema node.
func (g *Generator) headerBadges(ctx genContext) ([]docmodel.Badge, error) {
	out := make([]docmodel.Badge, 0, 4)
	out = append(out, g.jsonPathBadge(ctx))

	for _, rule := range badgeRules {
		value, present := ctx.schema.Get(rule.Keyword)
		if !present {
			continue
		}

		badge, err := rule.Build(g, ctx, value)
		if err != nil {
			return nil, err
		}

		if badge == nil {
			continue
		}

		out = append(out, *badge)
	}

	return out, nil
}

// jsonPathBadge renders the leading instance-location badge.
func (g *Generator) jsonPathBadge(ctx genContext) docmodel.Badge {
	return docmodel.Badge{
		Label:   "JSONPath",
		Message: ctx.instancePath,
		Title:   "JSONPath of the instances validated by this schema.",
		Style:   g.cfg.BadgeBase,
	}
}

// keywordBadge assembles one badge with configured styling and tooltip overrides.
//
// polarity selects the permissive or restrictive palette; nil keeps the base
// style. A companion title key on the schema replaces the generated tooltip.
func (g *Generator) keywordBadge(ctx genContext, keyword, message, title, link string, polarity *bool) *docmodel.Badge {
	override, hasOverride := g.cfg.BadgeOverrides[keyword]

	label := ""
	if hasOverride {
		label = override.Label
	}

	if label == "" {
		label = g.cfg.KeyTitle(keyword)
	}

	if custom := strings.TrimSpace(ctx.schema.Str(g.cfg.titleKeyFor(keyword))); custom != "" {
		title = custom
	}

	style := g.cfg.BadgeBase
	if polarity != nil {
		if *polarity {
			style = style.Merge(g.cfg.BadgePermissive)
		} else {
			style = style.Merge(g.cfg.BadgeRestrictive)
		}
	}

	if hasOverride {
		style = style.Merge(override.Style)
	}

	return &docmodel.Badge{Label: label, Message: message, Title: title, Link: link, Style: style}
}

// boolSentence renders "is"/"is not" tooltips for boolean keywords.
func boolSentence(value bool, subject string) string {
	if value {
		return "This value is " + subject + "."
	}

	return "This value is not " + subject + "."
}

// booleanBadge renders one boolean keyword badge.
func booleanBadge(g *Generator, ctx genContext, keyword string, value any, title func(bool) string, polarityFor func(bool) *bool) *docmodel.Badge {
	typed, ok := value.(bool)
	if !ok {
		return nil
	}

	return g.keywordBadge(ctx, keyword, strconv.FormatBool(typed), title(typed), "", polarityFor(typed))
}

// falseIsPermissive styles false values green and true values red.
func falseIsPermissive(value bool) *bool {
	if value {
		return &restrictive
	}

	return &permissive
}

// trueIsPermissive styles true values green and false values red.
func trueIsPermissive(value bool) *bool {
	if value {
		return &permissive
	}

	return &restrictive
}

// neutralPolarity keeps the base style for either value.
func neutralPolarity(bool) *bool { return nil }

// badgeDeprecated renders the deprecated keyword badge.
func badgeDeprecated(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	title := func(v bool) string { return boolSentence(v, "deprecated") }

	return booleanBadge(g, ctx, "deprecated", value, title, falseIsPermissive), nil
}

// badgeReadOnly renders the readOnly keyword badge.
func badgeReadOnly(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	title := func(v bool) string { return boolSentence(v, "read-only") }

	return booleanBadge(g, ctx, "readOnly", value, title, falseIsPermissive), nil
}

// badgeWriteOnly renders the writeOnly keyword badge.
func badgeWriteOnly(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	title := func(v bool) string { return boolSentence(v, "write-only") }

	return booleanBadge(g, ctx, "writeOnly", value, title, falseIsPermissive), nil
}

// badgeUniqueItems renders the uniqueItems keyword badge.
func badgeUniqueItems(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	title := func(v bool) string {
		if v {
			return "All array elements must be unique."
		}

		return "Array elements do not need to be unique."
	}

	return booleanBadge(g, ctx, "uniqueItems", value, title, neutralPolarity), nil
}

// badgeType renders the type keyword badge for scalar or list values.
func badgeType(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	if list, ok := value.([]any); ok {
		names := make([]string, 0, len(list))
		for _, item := range list {
			names = append(names, scalarText(item))
		}

		message := strings.Join(names, " | ")
		title := fmt.Sprintf("This value must have one of the following data types: %s.", strings.Join(names, ", "))

		return g.keywordBadge(ctx, "type", message, title, "", nil), nil
	}

	name := scalarText(value)

	return g.keywordBadge(ctx, "type", name, fmt.Sprintf("This value must be of type %s.", name), "", nil), nil
}

// scalarBadge renders one scalar keyword badge with a fixed tooltip template.
func scalarBadge(g *Generator, ctx genContext, keyword string, value any, template, link string) *docmodel.Badge {
	text := scalarText(value)

	return g.keywordBadge(ctx, keyword, text, fmt.Sprintf(template, text), link, nil)
}

// badgeFormat renders the format keyword badge.
func badgeFormat(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "format", value, "This value must be a string with '%s' format.", ""), nil
}

// badgeContentMediaType renders the contentMediaType keyword badge.
func badgeContentMediaType(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "contentMediaType", value, "This value must be a string with '%s' MIME type.", ""), nil
}

// badgeContentEncoding renders the contentEncoding keyword badge.
func badgeContentEncoding(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "contentEncoding", value, "This value must be a string with '%s' encoding.", ""), nil
}

// badgeMinLength renders the minLength keyword badge.
func badgeMinLength(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "minLength", value, "This value must be a string with a minimum length of %s.", ""), nil
}

// badgeMaxLength renders the maxLength keyword badge.
func badgeMaxLength(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "maxLength", value, "This value must be a string with a maximum length of %s.", ""), nil
}

// badgeMinimum renders the minimum keyword badge.
func badgeMinimum(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "minimum", value, "This value must be greater than or equal to %s.", ""), nil
}

// badgeExclusiveMinimum renders the exclusiveMinimum keyword badge.
func badgeExclusiveMinimum(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "exclusiveMinimum", value, "This value must be greater than %s.", ""), nil
}

// badgeMaximum renders the maximum keyword badge.
func badgeMaximum(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "maximum", value, "This value must be less than or equal to %s.", ""), nil
}

// badgeExclusiveMaximum renders the exclusiveMaximum keyword badge.
func badgeExclusiveMaximum(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "exclusiveMaximum", value, "This value must be smaller than %s.", ""), nil
}

// badgeMultipleOf renders the multipleOf keyword badge.
func badgeMultipleOf(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "multipleOf", value, "This value must be a multiple of %s.", ""), nil
}

// badgeMinItems renders the minItems keyword badge.
func badgeMinItems(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "minItems", value, "This array must contain %s or more elements.", ""), nil
}

// badgeMaxItems renders the maxItems keyword badge.
func badgeMaxItems(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "maxItems", value, "This array must contain %s or less elements.", ""), nil
}

// badgeMinContains renders the minContains keyword badge.
func badgeMinContains(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	link := "#" + ctx.tag("contains")

	return scalarBadge(g, ctx, "minContains", value, "This array must contain %s or more elements conforming to the `contains` schema.", link), nil
}

// badgeMaxContains renders the maxContains keyword badge.
func badgeMaxContains(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	link := "#" + ctx.tag("contains")

	return scalarBadge(g, ctx, "maxContains", value, "This array must contain %s or less elements conforming to the `contains` schema.", link), nil
}

// badgeMinProperties renders the minProperties keyword badge.
func badgeMinProperties(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "minProperties", value, "This object must contain %s or more properties.", ""), nil
}

// badgeMaxProperties renders the maxProperties keyword badge.
func badgeMaxProperties(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	return scalarBadge(g, ctx, "maxProperties", value, "This object must contain %s or less properties.", ""), nil
}

// badgeUnevaluatedItems renders the unevaluatedItems badge for boolean or
// schema values.
func badgeUnevaluatedItems(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	const subject = "Array elements other than those defined in `items`, `prefixItems`, or `contains`"

	if typed, ok := value.(bool); ok {
		title := subject + " are not allowed."
		if typed {
			title = subject + " are allowed."
		}

		return g.keywordBadge(ctx, "unevaluatedItems", strconv.FormatBool(typed), title, "", trueIsPermissive(typed)), nil
	}

	link := "#" + ctx.tag("unevaluatedItems")

	return g.keywordBadge(ctx, "unevaluatedItems", presenceMarker, subject+" must conform to a separate schema.", link, nil), nil
}

// badgeUnevaluatedProperties renders the unevaluatedProperties badge for
// boolean or schema values.
func badgeUnevaluatedProperties(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	if typed, ok := value.(bool); ok {
		title := "Unevaluated object properties are not allowed."
		if typed {
			title = "Unevaluated object properties are allowed."
		}

		return g.keywordBadge(ctx, "unevaluatedProperties", strconv.FormatBool(typed), title, "", trueIsPermissive(typed)), nil
	}

	link := "#" + ctx.tag("unevaluatedProperties")

	return g.keywordBadge(ctx, "unevaluatedProperties", presenceMarker, "Unevaluated object properties must conform to a separate schema.", link, nil), nil
}

// badgeDefault renders the default keyword badge.
func badgeDefault(g *Generator, ctx genContext, _ any) (*docmodel.Badge, error) {
	return g.keywordBadge(ctx, "default", presenceMarker, "This value has a default.", "#"+ctx.tag("default"), &permissive), nil
}

// badgeConst renders the const keyword badge.
func badgeConst(g *Generator, ctx genContext, _ any) (*docmodel.Badge, error) {
	return g.keywordBadge(ctx, "const", presenceMarker, "This value is a constant.", "#"+ctx.tag("const"), nil), nil
}

// badgePattern renders the pattern keyword badge.
func badgePattern(g *Generator, ctx genContext, _ any) (*docmodel.Badge, error) {
	return g.keywordBadge(ctx, "pattern", presenceMarker, "This string must match a RegEx pattern.", "#"+ctx.tag("pattern"), nil), nil
}

// badgeEnum renders the enum keyword badge.
func badgeEnum(g *Generator, ctx genContext, _ any) (*docmodel.Badge, error) {
	return g.keywordBadge(ctx, "enum", presenceMarker, "This value must be equal to one of the enumerated values.", "#"+ctx.tag("enum"), nil), nil
}

// badgeContentSchema renders the contentSchema keyword badge.
func badgeContentSchema(g *Generator, ctx genContext, _ any) (*docmodel.Badge, error) {
	return g.keywordBadge(ctx, "contentSchema", presenceMarker, "This media content has a defined schema.", "#"+ctx.tag("contentSchema"), nil), nil
}

// badgeRequired renders the required keyword count badge.
func badgeRequired(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	list, _ := value.([]any)
	count := len(list)
	title := fmt.Sprintf("This object has %d required properties.", count)

	return g.keywordBadge(ctx, "required", strconv.Itoa(count), title, "#"+ctx.tag("required"), nil), nil
}

// badgeDependentRequired renders the dependentRequired keyword count badge.
func badgeDependentRequired(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	object, _ := value.(*Schema)

	total := 0
	for _, dependents := range object.All() {
		list, _ := dependents.([]any)
		total += len(list)
	}

	title := fmt.Sprintf("This object has %d required properties depending on %d other properties.", total, object.Len())

	return g.keywordBadge(ctx, "dependentRequired", strconv.Itoa(total), title, "#"+ctx.tag("required"), nil), nil
}

// badgePrefixItems renders the prefixItems keyword count badge.
func badgePrefixItems(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	list, _ := value.([]any)
	count := len(list)
	title := fmt.Sprintf("The first %d elements of this array are individually defined.", count)

	return g.keywordBadge(ctx, "prefixItems", strconv.Itoa(count), title, "#"+ctx.tag("prefixItems"), nil), nil
}

// badgeRef resolves the $ref keyword through the registry and renders its badge.
func badgeRef(g *Generator, ctx genContext, value any) (*docmodel.Badge, error) {
	if g.cfg.Registry == nil {
		return nil, fmt.Errorf("%w: schema at %q uses $ref", ErrRegistryRequired, ctx.schemaPath)
	}

	id := strings.TrimSpace(scalarText(value))
	target, err := g.cfg.Registry.Lookup(id)
	if err != nil {
		return nil, err
	}

	name := g.cfg.RefName(target)
	if name == "" {
		name = id
	}

	tag := g.cfg.RefTag(target)
	if tag == "" {
		tag = id
	}

	link := "#" + Slugify(g.cfg.RefTagPrefix+"-"+tag)
	title := fmt.Sprintf("This schema references another schema with ID '%s'.", id)

	return g.keywordBadge(ctx, "$ref", name, title, link, nil), nil
}
