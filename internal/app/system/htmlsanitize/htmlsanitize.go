// Package htmlsanitize strips markup from user-entered free text before it
// is sent to the backend. Request descriptions, campaign text, and contact
// messages are stored and displayed as plain text everywhere (templates
// escape on render), so any HTML a user pastes in is noise at best and an
// injection attempt at worst.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Sanitize removes every HTML element from s, keeping only its text
// content. Bare angle brackets in ordinary text ("5 < 10") survive:
// bluemonday entity-escapes text output, so the result is unescaped back
// to plain text before it goes to the backend.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// SanitizeAndTrim is Sanitize plus whitespace trimming, for single-line
// form fields like titles and campaign names.
func SanitizeAndTrim(s string) string {
	return strings.TrimSpace(Sanitize(s))
}
