// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for HelpBridge.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_base_url, session_name, etc.
//   - Environment variables: HELPBRIDGE_BACKEND_BASE_URL, HELPBRIDGE_SESSION_NAME, etc.
//   - Command-line flags: --backend_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_base_url", Default: "http://localhost:8080", Desc: "Base URL of the HelpBridge REST backend"},
	{Name: "backend_timeout", Default: "30s", Desc: "HTTP client timeout for backend calls"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "helpbridge-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "csrf_key", Default: "", Desc: "CSRF token key (blank falls back to session_key)"},

	{Name: "admin_poll_interval", Default: "5s", Desc: "Admin dashboard summary refresh interval"},

	// Login rate limiting ("0" keeps the built-in defaults)
	{Name: "login_ip_limit", Default: "0", Desc: "Login attempts allowed per client IP per window"},
	{Name: "login_ip_window", Default: "", Desc: "Window for the per-IP login limit (e.g., 1m)"},
	{Name: "login_email_limit", Default: "0", Desc: "Login attempts allowed per account per window"},
	{Name: "login_email_window", Default: "", Desc: "Window for the per-account login limit (e.g., 5m)"},

	// Per-call timeout overrides (blank keeps the built-in defaults)
	{Name: "timeout_short", Default: "", Desc: "Timeout for single-entity backend calls (e.g., 5s)"},
	{Name: "timeout_medium", Default: "", Desc: "Timeout for list backend calls (e.g., 10s)"},
	{Name: "timeout_long", Default: "", Desc: "Timeout for mutating backend calls (e.g., 30s)"},
	{Name: "timeout_batch", Default: "", Desc: "Timeout for bulk backend calls like demo seeding (e.g., 60s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before the backend client or handlers are
// built. CoreConfig comes from the shared WAFFLE layer; AppConfig is
// specific to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HELPBRIDGE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendBaseURL: appValues.String("backend_base_url"),
		BackendTimeout: appValues.Duration("backend_timeout", 30*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CSRFKey: appValues.String("csrf_key"),

		AdminPollInterval: appValues.Duration("admin_poll_interval", 5*time.Second),

		LoginIPLimit:     appValues.Int("login_ip_limit"),
		LoginIPWindow:    appValues.Duration("login_ip_window", 0),
		LoginEmailLimit:  appValues.Int("login_email_limit"),
		LoginEmailWindow: appValues.Duration("login_email_window", 0),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),
		TimeoutLong:   appValues.Duration("timeout_long", 0),
		TimeoutBatch:  appValues.Duration("timeout_batch", 0),
	}

	if appCfg.CSRFKey == "" {
		appCfg.CSRFKey = appCfg.SessionKey
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// HelpBridge validates the backend base URL format to catch
// configuration errors early, before the first request fails.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.BackendBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		logger.Error("invalid backend base URL", zap.String("backend_base_url", appCfg.BackendBaseURL))
		return fmt.Errorf("invalid backend_base_url %q: must be an absolute http(s) URL", appCfg.BackendBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend_base_url scheme %q: must be http or https", u.Scheme)
	}

	if appCfg.AdminPollInterval < time.Second {
		return fmt.Errorf("admin_poll_interval %s is too aggressive: minimum is 1s", appCfg.AdminPollInterval)
	}

	if coreCfg.Env == "prod" && appCfg.SessionKey == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}

	return nil
}
