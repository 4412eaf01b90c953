package navigation

import (
	"net/http/httptest"
	"testing"
)

func TestSafeBackURL(t *testing.T) {
	tests := []struct {
		name   string
		target string
		opts   BackURLOptions
		want   string
	}{
		{
			name:   "valid return within prefix",
			target: "/admin/dashboard?return=/admin/users/students",
			opts:   AdminBackURL,
			want:   "/admin/users/students",
		},
		{
			name:   "offsite return falls back",
			target: "/admin/dashboard?return=https://evil.example.com/",
			opts:   AdminBackURL,
			want:   "/admin/dashboard",
		},
		{
			name:   "scheme relative return falls back",
			target: "/admin/dashboard?return=//evil.example.com/",
			opts:   AdminBackURL,
			want:   "/admin/dashboard",
		},
		{
			name:   "wrong area falls back",
			target: "/volunteer/dashboard?return=/admin/dashboard",
			opts:   VolunteerBackURL,
			want:   "/volunteer/dashboard",
		},
		{
			name:   "missing return falls back",
			target: "/ngo/dashboard",
			opts:   NGOBackURL,
			want:   "/ngo/dashboard?tab=requests",
		},
		{
			name:   "no prefix accepts any same-site path",
			target: "/login?return=/donor/dashboard",
			opts:   BackURLOptions{Fallback: "/"},
			want:   "/donor/dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			got := SafeBackURL(r, tt.opts)
			if got != tt.want {
				t.Errorf("SafeBackURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsSafePath(t *testing.T) {
	safe := []string{"/", "/admin", "/a?b=c"}
	unsafe := []string{"", "admin", "//host", "/\\host", "https://x"}

	for _, p := range safe {
		if !IsSafePath(p) {
			t.Errorf("IsSafePath(%q) = false, want true", p)
		}
	}
	for _, p := range unsafe {
		if IsSafePath(p) {
			t.Errorf("IsSafePath(%q) = true, want false", p)
		}
	}
}
