// Package normalize canonicalizes user-entered identity fields once, at
// the form boundary, so the rest of the app and the backend always see one
// spelling.
package normalize

import "strings"

// Email lowercases and trims an email address. Comparison and rate
// limiting key on the result, so the same account typed in any casing
// maps to one identity.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a person or organization name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role name. Route guards match roles by
// exact string, so form input must fold to the canonical lowercase form.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// City trims a free-text city filter and title-cases the first rune of
// each word so "pune" and "Pune" hit the same backend filter.
func City(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
