// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/admin", "/ngo").
	// If empty, any same-site path is allowed.
	AllowedPrefix string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return" and only
// accepts same-site paths (a leading "/" that is not "//"), so attacker
// supplied values can never redirect off-site. An AllowedPrefix further
// pins the result to one area of the app.
//
// Example usage:
//
//	url := navigation.SafeBackURL(r, navigation.BackURLOptions{
//	    AllowedPrefix: "/admin",
//	    Fallback:      "/admin/dashboard",
//	})
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := strings.TrimSpace(query.Get(r, "return"))
	if ret == "" {
		ret = strings.TrimSpace(r.FormValue("return"))
	}

	if IsSafePath(ret) {
		if opts.AllowedPrefix == "" || strings.HasPrefix(ret, opts.AllowedPrefix) {
			return ret
		}
	}

	return opts.Fallback
}

// IsSafePath reports whether raw is a same-site absolute path. Scheme
// relative URLs ("//evil.example.com") and anything not starting with "/"
// are rejected.
func IsSafePath(raw string) bool {
	return strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") &&
		!strings.HasPrefix(raw, "/\\")
}

// Common back URL configurations for reuse across features.
var (
	// AdminBackURL pins return URLs to the admin area.
	AdminBackURL = BackURLOptions{
		AllowedPrefix: "/admin",
		Fallback:      "/admin/dashboard",
	}

	// VolunteerBackURL pins return URLs to the volunteer area.
	VolunteerBackURL = BackURLOptions{
		AllowedPrefix: "/volunteer",
		Fallback:      "/volunteer/dashboard",
	}

	// NGOBackURL pins return URLs to the NGO area.
	NGOBackURL = BackURLOptions{
		AllowedPrefix: "/ngo",
		Fallback:      "/ngo/dashboard?tab=requests",
	}
)
