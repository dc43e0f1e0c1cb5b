// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package schemark

import (
	"strings"
	"unicode"

	"github.com/huandu/xstrings"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts arbitrary keyword or path text into a URL-safe anchor token.
//
// Output is lowercase ASCII with single hyphens between tokens and no
// leading/trailing hyphen. Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	text = removeAccents(strings.ToLower(strings.TrimSpace(text)))

	var out strings.Builder
	out.Grow(len(text))

	lastDash := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out.WriteRune(r)
			lastDash = false
		default:
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimRight(out.String(), "-")
}

// removeAccents folds accented letters to their base form.
func removeAccents(text string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, text)
	if err != nil {
		return text
	}

	return out
}

// KeyTitleCamel converts camelCase keyword names into spaced Title Case labels.
func KeyTitleCamel(key string) string {
	key = strings.TrimPrefix(strings.TrimSpace(key), "$")
	if key == "" {
		return ""
	}

	words := strings.Split(xstrings.ToSnakeCase(key), "_")
	for index, word := range words {
		words[index] = upperFirst(word)
	}

	return strings.Join(words, " ")
}

// upperFirst uppercases the first rune of one word.
func upperFirst(word string) string {
	if word == "" {
		return word
	}

	out := []rune(word)
	out[0] = unicode.ToUpper(out[0])
	return string(out)
}

// classNameFor joins the configured class prefix and parts into one slugified class name.
func classNameFor(classPrefix string, parts ...string) string {
	return Slugify(classPrefix + strings.Join(parts, "-"))
}

// tagNameFor joins tag prefix, schema path and parts into one slugified anchor name.
func tagNameFor(tagPrefix, schemaPath string, parts ...string) string {
	joined := tagPrefix + "-" + schemaPath
	if len(parts) > 0 {
		joined += "-" + strings.Join(parts, "-")
	}

	return Slugify(joined)
}

// childInstancePath extends an instance path with a named property segment.
func childInstancePath(instancePath, key string) string {
	return instancePath + "." + key
}

// childPatternInstancePath extends an instance path with a pattern property segment.
func childPatternInstancePath(instancePath, key string) string {
	return instancePath + "[" + key + "]"
}
