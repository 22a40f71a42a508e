package entity

import (
	"regexp"
	"strings"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	doctypePattern = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
	htmlTagPattern = regexp.MustCompile(`(?i)</?html[^>]*>`)
	headPattern    = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	bodyTagPattern = regexp.MustCompile(`(?i)</?body[^>]*>`)
)

// StripMarkup removes every tag from s. Entities are left untouched.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	return tagPattern.ReplaceAllString(s, "")
}

// RawDocument returns the inner content of a raw HTML payload with the
// DOCTYPE, html, head and body wrappers removed.
func RawDocument(raw string) string {
	cleaned := doctypePattern.ReplaceAllString(raw, "")
	cleaned = htmlTagPattern.ReplaceAllString(cleaned, "")
	cleaned = headPattern.ReplaceAllString(cleaned, "")
	cleaned = bodyTagPattern.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}
