// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from display titles.
// Category and service slugs used in routes and catalog filters are derived
// with Generate, so the derivation must stay deterministic: the same title
// always yields the same slug.
package slug

import (
	"regexp"
	"strings"
)

var (
	// whitespaceRun matches one or more consecutive whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// nonSlugChars matches anything that isn't a lowercase letter, digit, or hyphen.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
)

// Generate creates a URL-friendly slug from the given title. Whitespace
// runs become a single hyphen, then anything that is not a lowercase
// letter, digit, or hyphen is stripped.
// Example: "Computers and Printers" → "computers-and-printers"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = nonSlugChars.ReplaceAllString(result, "")
	return result
}

// Humanize converts a slug back to a display title by splitting on hyphens
// and upper-casing the first letter of each word. Used as a fallback when a
// category row is missing but its slug appears in a route.
// Example: "computers-and-printers" → "Computers And Printers"
func Humanize(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
