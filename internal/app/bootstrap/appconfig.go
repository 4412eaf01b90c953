// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS). AppConfig is everything specific to HelpBridge: where
// the backend API lives, how sessions are signed, and how the admin
// dashboard cache refreshes.
type AppConfig struct {
	// Backend API configuration
	BackendBaseURL string        // Base URL of the HelpBridge REST backend (e.g., http://localhost:8080)
	BackendTimeout time.Duration // HTTP client timeout for backend calls

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: helpbridge-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte key for CSRF token generation (falls back to SessionKey)

	// Admin dashboard refresh
	AdminPollInterval time.Duration // How often the admin summary cache polls the backend

	// Login rate limiting (zero keeps the built-in defaults)
	LoginIPLimit     int           // Attempts allowed per client IP per window
	LoginIPWindow    time.Duration // Window for the per-IP limit
	LoginEmailLimit  int           // Attempts allowed per account per window
	LoginEmailWindow time.Duration // Window for the per-account limit

	// Per-call timeout overrides (zero keeps the defaults)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
	TimeoutBatch  time.Duration
}
