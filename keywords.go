// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

// knownSchemaKeywords lists draft-2020-12 keywords eligible for companion
// title/description keys. Keys outside this set are passed through untouched.
var knownSchemaKeywords = map[string]struct{}{
	"$schema":               {},
	"$id":                   {},
	"$anchor":               {},
	"$ref":                  {},
	"$defs":                 {},
	"$comment":              {},
	"title":                 {},
	"description":           {},
	"type":                  {},
	"format":                {},
	"enum":                  {},
	"const":                 {},
	"default":               {},
	"examples":              {},
	"deprecated":            {},
	"readOnly":              {},
	"writeOnly":             {},
	"contentMediaType":      {},
	"contentEncoding":       {},
	"contentSchema":         {},
	"minLength":             {},
	"maxLength":             {},
	"pattern":               {},
	"minimum":               {},
	"maximum":               {},
	"exclusiveMinimum":      {},
	"exclusiveMaximum":      {},
	"multipleOf":            {},
	"items":                 {},
	"prefixItems":           {},
	"contains":              {},
	"minItems":              {},
	"maxItems":              {},
	"minContains":           {},
	"maxContains":           {},
	"uniqueItems":           {},
	"unevaluatedItems":      {},
	"properties":            {},
	"patternProperties":     {},
	"additionalProperties":  {},
	"propertyNames":         {},
	"minProperties":         {},
	"maxProperties":         {},
	"required":              {},
	"dependentRequired":     {},
	"dependentSchemas":      {},
	"unevaluatedProperties": {},
	"allOf":                 {},
	"anyOf":                 {},
	"oneOf":                 {},
	"not":                   {},
	"if":                    {},
	"then":                  {},
	"else":                  {},
}

// summaryKeyword is the non-standard annotation keyword surfaced as a labeled block.
const summaryKeyword = "summary"

// schemaValueKeywords hold a single sub-schema as their value.
var schemaValueKeywords = map[string]struct{}{
	"additionalProperties":  {},
	"contains":              {},
	"contentSchema":         {},
	"else":                  {},
	"if":                    {},
	"items":                 {},
	"not":                   {},
	"propertyNames":         {},
	"then":                  {},
	"unevaluatedItems":      {},
	"unevaluatedProperties": {},
}

// schemaMapKeywords hold a mapping of names to sub-schemas.
var schemaMapKeywords = map[string]struct{}{
	"$defs":             {},
	"dependentSchemas":  {},
	"patternProperties": {},
	"properties":        {},
}

// schemaListKeywords hold a sequence of sub-schemas.
var schemaListKeywords = map[string]struct{}{
	"allOf":       {},
	"anyOf":       {},
	"oneOf":       {},
	"prefixItems": {},
}
