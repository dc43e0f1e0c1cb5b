// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Schemark Authors
// Source: github.com/schemark/schemark

package docmodel

import (
	"fmt"
	"net/url"
	"strings"
)

// BadgeStyle controls shields-style visual attributes for one badge.
type BadgeStyle struct {
	// Color is the badge message color as a hex value like "#0B3C75".
	Color string
	// Style is the shields render style like "flat-square".
	Style string
}

// Merge overlays non-empty fields of the override onto the style.
func (style BadgeStyle) Merge(override BadgeStyle) BadgeStyle {
	if override.Color != "" {
		style.Color = override.Color
	}

	if override.Style != "" {
		style.Style = override.Style
	}

	return style
}

// Badge is one inline label/message element with tooltip and optional link.
type Badge struct {
	Label   string
	Message string
	// Title is the hover tooltip text.
	Title string
	// Link is an optional anchor or URL target.
	Link string
	// Alt is the image alt text; defaults to "label: message".
	Alt   string
	Style BadgeStyle
}

// BadgeStrip is a run of badges inside one classed container.
type BadgeStrip struct {
	Badges  []Badge
	Classes []string
	// Separator is the number of spaces between adjacent badges.
	Separator int
}

// ImageURL returns the shields.io static badge image URL for the badge.
func (badge Badge) ImageURL() string {
	query := url.Values{}
	query.Set("label", badge.Label)
	query.Set("message", badge.Message)
	if badge.Style.Color != "" {
		query.Set("color", badge.Style.Color)
	}

	if badge.Style.Style != "" {
		query.Set("style", badge.Style.Style)
	}

	target := url.URL{
		Scheme:   "https",
		Host:     "img.shields.io",
		Path:     "/static/v1",
		RawQuery: query.Encode(),
	}

	return target.String()
}

// Markdown returns the badge as one inline Markdown image, linked when a target is set.
func (badge Badge) Markdown() string {
	alt := strings.TrimSpace(badge.Alt)
	if alt == "" {
		alt = strings.TrimSpace(badge.Label + ": " + badge.Message)
	}

	image := fmt.Sprintf("![%s](%s)", escapeAltText(alt), badge.ImageURL())
	if badge.Title != "" && badge.Link == "" {
		image = fmt.Sprintf("![%s](%s %q)", escapeAltText(alt), badge.ImageURL(), badge.Title)
	}

	if badge.Link == "" {
		return image
	}

	if badge.Title != "" {
		return fmt.Sprintf("[%s](%s %q)", image, badge.Link, badge.Title)
	}

	return fmt.Sprintf("[%s](%s)", image, badge.Link)
}

// escapeAltText escapes markdown link delimiters inside image alt text.
func escapeAltText(value string) string {
	value = strings.ReplaceAll(value, "[", "\\[")
	value = strings.ReplaceAll(value, "]", "\\]")
	return value
}

// markdownLines renders the strip as a classed single-line badge container.
func (strip *BadgeStrip) markdownLines(r *renderer) []string {
	if strip == nil || len(strip.Badges) == 0 {
		return nil
	}

	separator := strip.Separator
	if separator < 1 {
		separator = 1
	}

	rendered := make([]string, 0, len(strip.Badges))
	for _, badge := range strip.Badges {
		rendered = append(rendered, badge.Markdown())
	}

	line := strings.Join(rendered, strings.Repeat(" ", separator))
	if len(strip.Classes) == 0 {
		return []string{line}
	}

	return []string{
		fmt.Sprintf("<div class=%q markdown>", strings.Join(strip.Classes, " ")),
		"",
		line,
		"",
		"</div>",
	}
}
