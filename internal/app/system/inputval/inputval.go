// Package inputval validates user-entered form values before they are
// forwarded to the backend, so obviously bad input fails fast with a form
// message instead of a backend round trip.
package inputval

import "strings"

// atext is the set of characters allowed in a dot-atom local part.
const atext = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#$%&'*+-/=?^_`{|}~"

// IsValidEmail reports whether s is a plausible bare email address.
// Display-name forms ("Name <user@host>") are rejected; single-label
// domains are allowed so dev and test environments work.
func IsValidEmail(s string) bool {
	if s != strings.TrimSpace(s) || s == "" {
		return false
	}
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	return validLocal(s[:at]) && validDomain(s[at+1:])
}

func validLocal(local string) bool {
	if local == "" || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.Contains(local, "..") {
		return false
	}
	for _, r := range local {
		if r != '.' && !strings.ContainsRune(atext, r) {
			return false
		}
	}
	return true
}

func validDomain(domain string) bool {
	if domain == "" {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			default:
				return false
			}
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

// IsValidPhone reports whether s looks like a dialable phone number:
// digits with optional separators and a leading +, seven digits minimum.
func IsValidPhone(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
