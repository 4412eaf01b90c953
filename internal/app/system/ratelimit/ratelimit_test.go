package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowWithinWindow(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("k") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("k") {
		t.Error("fourth attempt should be blocked")
	}
	if l.Remaining("k") != 0 {
		t.Errorf("expected 0 remaining, got %d", l.Remaining("k"))
	}

	// Other keys are independent.
	if !l.Allow("other") {
		t.Error("fresh key should be allowed")
	}
}

func TestLimiter_WindowExpires(t *testing.T) {
	l := New(1, 20*time.Millisecond)

	if !l.Allow("k") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("second attempt inside window should be blocked")
	}

	time.Sleep(30 * time.Millisecond)
	if !l.Allow("k") {
		t.Error("attempt after window expiry should be allowed")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)
	l.Allow("k")
	l.Reset("k")
	if !l.Allow("k") {
		t.Error("reset key should be allowed again")
	}
}

func TestNewLoginLimiter_ZeroFieldsTakeDefaults(t *testing.T) {
	ll := NewLoginLimiter(LoginLimits{})
	if ll.ipLimiter.limit != DefaultIPLimit || ll.ipLimiter.duration != DefaultIPWindow {
		t.Errorf("ip limiter = %d/%s, want defaults", ll.ipLimiter.limit, ll.ipLimiter.duration)
	}
	if ll.emailLimiter.limit != DefaultEmailLimit || ll.emailLimiter.duration != DefaultEmailWindow {
		t.Errorf("email limiter = %d/%s, want defaults", ll.emailLimiter.limit, ll.emailLimiter.duration)
	}

	ll = NewLoginLimiter(LoginLimits{IPLimit: 3, EmailWindow: time.Minute})
	if ll.ipLimiter.limit != 3 {
		t.Errorf("expected configured ip limit 3, got %d", ll.ipLimiter.limit)
	}
	if ll.ipLimiter.duration != DefaultIPWindow {
		t.Errorf("unset ip window should default, got %s", ll.ipLimiter.duration)
	}
	if ll.emailLimiter.duration != time.Minute {
		t.Errorf("expected configured email window 1m, got %s", ll.emailLimiter.duration)
	}
}

func TestLoginLimiter_BlocksAccountAcrossCasing(t *testing.T) {
	ll := NewLoginLimiter(LoginLimits{EmailLimit: 2, EmailWindow: time.Minute})

	attempt := func(email string) bool {
		req := httptest.NewRequest("POST", "/login", nil)
		allowed, _ := ll.Check(req, email)
		return allowed
	}

	if !attempt("User@Example.com") {
		t.Fatal("first attempt should pass")
	}
	if !attempt("user@example.com") {
		t.Fatal("second attempt should pass")
	}
	// Different casing of the same account shares the window.
	if attempt("USER@EXAMPLE.COM") {
		t.Error("third attempt for the same account should be blocked")
	}

	ll.ResetEmail("user@EXAMPLE.com")
	if !attempt("user@example.com") {
		t.Error("attempt after reset should pass")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for wins",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.1"},
			want:       "198.51.100.4",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": " 198.51.100.9 "},
			want:       "198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/login", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
