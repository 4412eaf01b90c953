// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	aboutfeature "github.com/helpbridge/helpbridge-web/internal/app/features/about"
	adminfeature "github.com/helpbridge/helpbridge-web/internal/app/features/admin"
	contactfeature "github.com/helpbridge/helpbridge-web/internal/app/features/contact"
	donorfeature "github.com/helpbridge/helpbridge-web/internal/app/features/donor"
	errorsfeature "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	healthfeature "github.com/helpbridge/helpbridge-web/internal/app/features/health"
	homefeature "github.com/helpbridge/helpbridge-web/internal/app/features/home"
	loginfeature "github.com/helpbridge/helpbridge-web/internal/app/features/login"
	logoutfeature "github.com/helpbridge/helpbridge-web/internal/app/features/logout"
	ngofeature "github.com/helpbridge/helpbridge-web/internal/app/features/ngo"
	registerfeature "github.com/helpbridge/helpbridge-web/internal/app/features/register"
	studentfeature "github.com/helpbridge/helpbridge-web/internal/app/features/student"
	volunteerfeature "github.com/helpbridge/helpbridge-web/internal/app/features/volunteer"
	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client, and any
// Startup hooks have completed. It boots the template engine, applies
// session and CSRF middleware, and mounts feature routers for every
// application area: the public pages, authentication, and the five
// role-guarded dashboards.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	flashQ := flash.NewQueue(appCfg.SessionKey, secure, logger)
	errLog := errorsfeature.NewErrorLogger(logger)
	loginLimiter := ratelimit.NewLoginLimiter(ratelimit.LoginLimits{
		IPLimit:     appCfg.LoginIPLimit,
		IPWindow:    appCfg.LoginIPWindow,
		EmailLimit:  appCfg.LoginEmailLimit,
		EmailWindow: appCfg.LoginEmailWindow,
	})

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for every mutating form. Templates embed the token
	// as the gorilla.csrf.Token hidden field.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(flashQ, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(flashQ, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	contactHandler := contactfeature.NewHandler(deps.API, flashQ, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.API, sessionMgr, flashQ, errLog, loginLimiter, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	registerHandler := registerfeature.NewHandler(deps.API, flashQ, errLog, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Role-guarded areas
	adminHandler := adminfeature.NewHandler(deps.API, flashQ, errLog, deps.AdminRefresher, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler, sessionMgr))

	studentHandler := studentfeature.NewHandler(deps.API, flashQ, errLog, logger)
	r.Mount("/student", studentfeature.Routes(studentHandler, sessionMgr))

	volunteerHandler := volunteerfeature.NewHandler(deps.API, flashQ, errLog, logger)
	r.Mount("/volunteer", volunteerfeature.Routes(volunteerHandler, sessionMgr))

	ngoHandler := ngofeature.NewHandler(deps.API, flashQ, errLog, logger)
	r.Mount("/ngo", ngofeature.Routes(ngoHandler, sessionMgr))

	donorHandler := donorfeature.NewHandler(deps.API, flashQ, errLog, logger)
	r.Mount("/donor", donorfeature.Routes(donorHandler, sessionMgr))

	return r, nil
}
