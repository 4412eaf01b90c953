// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	uierrors "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/formutil"
	"github.com/helpbridge/helpbridge-web/internal/app/system/htmlsanitize"
	"github.com/helpbridge/helpbridge-web/internal/app/system/inputval"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

type Handler struct {
	API    *api.Client
	Flash  *flash.Queue
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(client *api.Client, flashQ *flash.Queue, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    client,
		Flash:  flashQ,
		ErrLog: errLog,
		Log:    logger,
	}
}

type contactFormData struct {
	formutil.Base
	Name    string
	Email   string
	Message string
}

// ServeContact handles GET /contact.
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Form contactFormData
	}{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "Contact HelpBridge", "/"),
	}

	templates.Render(w, r, "contact", data)
}

// HandleContactPost handles POST /contact. The message is free text, so
// any markup is stripped before it reaches the backend.
func (h *Handler) HandleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "contact: parse form failed", err, "Invalid form data.", "/contact")
		return
	}

	form := contactFormData{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: htmlsanitize.SanitizeAndTrim(r.FormValue("message")),
	}

	if form.Name == "" || form.Email == "" || form.Message == "" {
		h.renderFormWithError(w, r, form, "Please fill in all fields.")
		return
	}
	if !inputval.IsValidEmail(form.Email) {
		h.renderFormWithError(w, r, form, "Enter a valid email address so we can reply.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.API.SendContact(ctx, api.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		h.Log.Warn("contact: send failed", zap.Error(err))
		h.renderFormWithError(w, r, form, "Your message could not be sent. Please try again.")
		return
	}

	h.Flash.Push(w, r, flash.Success, "Thanks for reaching out. We'll get back to you soon.")
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, form contactFormData, msg string) {
	formutil.SetBase(&form.Base, r, "Contact HelpBridge", "/")
	form.SetError(msg)

	data := struct {
		viewdata.BaseVM
		Form contactFormData
	}{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "Contact HelpBridge", "/"),
		Form:   form,
	}

	templates.Render(w, r, "contact", data)
}
