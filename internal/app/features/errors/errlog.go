// internal/app/features/errors/errlog.go
package errors

import (
	stderrors "errors"
	"html"
	"net/http"

	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure in one line.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger backed by the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs the internal message and renders the generic error
// page with the user-facing message.
func (l *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, internal string, err error, userMsg, backURL string) {
	l.Log.Error(internal, zap.Error(err), zap.String("path", r.URL.Path))
	RenderError(w, r, http.StatusInternalServerError, userMsg, backURL)
}

// LogBadRequest logs the internal message and renders the generic error
// page with a 400 status.
func (l *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, internal string, err error, userMsg, backURL string) {
	l.Log.Warn(internal, zap.Error(err), zap.String("path", r.URL.Path))
	RenderError(w, r, http.StatusBadRequest, userMsg, backURL)
}

// LogForbidden logs the internal message and renders the access-denied page.
func (l *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, internal string, err error, userMsg, backURL string) {
	l.Log.Warn(internal, zap.Error(err), zap.String("path", r.URL.Path))
	RenderForbidden(w, r, userMsg, backURL)
}

// LogAPIError reports a failed backend call. A 401/403 from the backend
// means the bearer token is no longer honored, so the user is asked to sign
// in again; anything else shows the backend's message on the error page.
func (l *ErrorLogger) LogAPIError(w http.ResponseWriter, r *http.Request, internal string, err error, backURL string) {
	if api.IsForbidden(err) {
		l.Log.Warn(internal+": backend rejected token", zap.Error(err), zap.String("path", r.URL.Path))
		RenderUnauthorized(w, r, "/login")
		return
	}

	userMsg := "The server could not complete the request. Please try again."
	var apiErr *api.APIError
	if stderrors.As(err, &apiErr) && apiErr.Message != "" {
		userMsg = apiErr.Message
	}
	l.LogServerError(w, r, internal, err, userMsg, backURL)
}

// HTMXLogServerError logs the failure and writes a small fragment HTMX can
// swap into the page instead of a full error page.
func (l *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, internal string, err error, userMsg string) {
	l.Log.Error(internal, zap.Error(err), zap.String("path", r.URL.Path))
	writeFragment(w, userMsg)
}

// HTMXLogBadRequest is the HTMX variant of LogBadRequest.
func (l *ErrorLogger) HTMXLogBadRequest(w http.ResponseWriter, r *http.Request, internal string, err error, userMsg string) {
	l.Log.Warn(internal, zap.Error(err), zap.String("path", r.URL.Path))
	writeFragment(w, userMsg)
}

func writeFragment(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// 200 so HTMX performs the swap; the message is the payload.
	_, _ = w.Write([]byte(`<div class="alert alert-error">` + html.EscapeString(msg) + `</div>`))
}
