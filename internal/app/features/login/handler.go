// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	uierrors "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/navigation"
	"github.com/helpbridge/helpbridge-web/internal/app/system/normalize"
	"github.com/helpbridge/helpbridge-web/internal/app/system/ratelimit"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

type Handler struct {
	API        *api.Client
	SessionMgr *auth.SessionManager
	Flash      *flash.Queue
	ErrLog     *uierrors.ErrorLogger
	Limiter    *ratelimit.LoginLimiter
	Log        *zap.Logger
}

func NewHandler(client *api.Client, sessionMgr *auth.SessionManager, flashQ *flash.Queue, errLog *uierrors.ErrorLogger, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		API:        client,
		SessionMgr: sessionMgr,
		Flash:      flashQ,
		ErrLog:     errLog,
		Limiter:    limiter,
		Log:        logger,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in? Straight to the dashboard.
	if u, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, authz.DashboardPath(u.Role), http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.Flash, "Sign in", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := strings.TrimSpace(r.FormValue("return"))

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email, returnURL)
		return
	}

	if allowed, reason := h.Limiter.Check(r, email); !allowed {
		h.renderFormWithError(w, r, reason, email, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sess, err := h.API.Login(ctx, email, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			// Credential failures and pending approvals come back with a
			// message worth showing verbatim.
			msg := apiErr.Message
			if msg == "" {
				msg = "Sign in failed. Check your email and password."
			}
			h.renderFormWithError(w, r, msg, email, returnURL)
			return
		}
		h.ErrLog.LogServerError(w, r, "login: backend call failed", err,
			"The server is not reachable right now. Please try again.", "/login")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, sess); err != nil {
		h.ErrLog.LogServerError(w, r, "login: session save failed", err,
			"Could not start your session. Please try again.", "/login")
		return
	}

	h.Limiter.ResetEmail(email)
	h.Log.Info("user signed in",
		zap.Int64("user_id", sess.UserID),
		zap.String("role", sess.Role))

	target := authz.DashboardPath(sess.Role)
	if navigation.IsSafePath(returnURL) {
		target = returnURL
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, returnURL string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.Flash, "Sign in", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: returnURL,
	})
}
