// internal/app/features/register/handler.go
package register

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	uierrors "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/inputval"
	"github.com/helpbridge/helpbridge-web/internal/app/system/normalize"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

// maxDocumentSize caps the verification document upload.
const maxDocumentSize = 10 << 20 // 10 MiB

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

type registerFormData struct {
	viewdata.BaseVM
	Error    string
	FullName string
	Email    string
	Role     string
	City     string
	Phone    string
	Roles    []string
}

var selectableRoles = []string{
	authz.RoleStudent,
	authz.RoleVolunteer,
	authz.RoleNGO,
	authz.RoleDonor,
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /register                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "register", registerFormData{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "Create an account", "/"),
		Roles:  selectableRoles,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /register                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		h.ErrLog.LogBadRequest(w, r, "register: parse multipart failed", err, "Invalid form data.", "/register")
		return
	}

	form := registerFormData{
		FullName: normalize.Name(r.FormValue("full_name")),
		Email:    normalize.Email(r.FormValue("email")),
		Role:     normalize.Role(r.FormValue("role")),
		City:     normalize.City(r.FormValue("city")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
	}
	password := r.FormValue("password")

	if form.FullName == "" || form.Email == "" || password == "" || form.Role == "" {
		h.renderFormWithError(w, r, form, "Please fill in all required fields.")
		return
	}
	if !validRole(form.Role) {
		h.renderFormWithError(w, r, form, "Please choose a valid role.")
		return
	}
	if !inputval.IsValidEmail(form.Email) {
		h.renderFormWithError(w, r, form, "Enter a valid email address.")
		return
	}
	if form.Phone != "" && !inputval.IsValidPhone(form.Phone) {
		h.renderFormWithError(w, r, form, "Enter a valid phone number.")
		return
	}

	reg := api.Registration{
		FullName:    form.FullName,
		Email:       form.Email,
		Password:    password,
		Role:        form.Role,
		City:        form.City,
		PhoneNumber: form.Phone,
	}
	if v := r.FormValue("city_id"); v != "" {
		reg.CityID, _ = strconv.Atoi(v)
	}
	if lat, err := strconv.ParseFloat(r.FormValue("latitude"), 64); err == nil {
		reg.Latitude = lat
	}
	if lng, err := strconv.ParseFloat(r.FormValue("longitude"), 64); err == nil {
		reg.Longitude = lng
	}

	if file, header, err := r.FormFile("document"); err == nil {
		defer file.Close()
		reg.Document = file
		reg.DocumentName = header.Filename
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	if err := h.API.Register(ctx, reg); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			h.renderFormWithError(w, r, form, apiErr.Message)
			return
		}
		h.ErrLog.LogServerError(w, r, "register: backend call failed", err,
			"Registration could not be completed. Please try again.", "/register")
		return
	}

	h.Log.Info("registration submitted",
		zap.String("role", form.Role))

	// Donors are active immediately; everyone else waits for admin review.
	if form.Role == authz.RoleDonor {
		h.Flash.Push(w, r, flash.Success, "Account created. You can sign in now.")
	} else {
		h.Flash.Push(w, r, flash.Info, "Registration submitted. You can sign in once an administrator approves your account.")
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func validRole(role string) bool {
	for _, allowed := range selectableRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, form registerFormData, msg string) {
	form.BaseVM = viewdata.NewBaseVM(w, r, h.Flash, "Create an account", "/")
	form.Error = msg
	form.Roles = selectableRoles
	templates.Render(w, r, "register", form)
}
