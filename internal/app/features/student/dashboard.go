// internal/app/features/student/dashboard.go
package student

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/htmlsanitize"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

// categories are the assistance types offered on the new-request form. The
// backend has no structured field for them; the selection is folded into
// the description text.
var categories = []string{
	"Mobility support",
	"Reading assistance",
	"Medical visit",
	"Errands and shopping",
	"Tutoring",
	"Other",
}

type dashboardData struct {
	viewdata.BaseVM
	Requests []api.HelpRequest
}

type newRequestData struct {
	viewdata.BaseVM
	Error      string
	Categories []string

	Category    string
	Title       string
	Description string
	Amount      string
	Scheduled   string
	City        string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /student/dashboard                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	_, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	requests, err := h.API.StudentRequests(ctx, authz.Token(r), userID)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "student: load requests failed", err, "/")
		return
	}

	data := dashboardData{
		BaseVM:   viewdata.NewBaseVM(w, r, h.Flash, "My requests", "/"),
		Requests: requests,
	}

	templates.Render(w, r, "student_dashboard", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /student/requests/new                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNewRequest(w http.ResponseWriter, r *http.Request) {
	data := newRequestData{
		BaseVM:     viewdata.NewBaseVM(w, r, h.Flash, "New help request", "/student/dashboard"),
		Categories: categories,
	}
	templates.Render(w, r, "student_new_request", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /student/requests                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleCreatePost validates the form and submits the request. Geolocation
// is captured into hidden latitude/longitude fields by the form's script;
// a submission without coordinates is rejected here without touching the
// backend, mirroring the client-side gate for users with scripts disabled.
func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "student: bad form", err, "Invalid form submission.", "/student/requests/new")
		return
	}

	data := newRequestData{
		Categories:  categories,
		Category:    strings.TrimSpace(r.FormValue("category")),
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Amount:      strings.TrimSpace(r.FormValue("amount")),
		Scheduled:   strings.TrimSpace(r.FormValue("scheduled_at")),
		City:        strings.TrimSpace(r.FormValue("city")),
	}

	if data.Title == "" || data.Description == "" || data.City == "" || data.Scheduled == "" {
		h.renderFormWithError(w, r, data, "Please fill in all required fields.")
		return
	}

	latitude := strings.TrimSpace(r.FormValue("latitude"))
	longitude := strings.TrimSpace(r.FormValue("longitude"))
	if latitude == "" || longitude == "" {
		h.renderFormWithError(w, r, data, "Location is required. Allow location access and try again.")
		return
	}

	requestDate, requestTime, err := splitScheduled(data.Scheduled)
	if err != nil {
		h.renderFormWithError(w, r, data, "Choose a valid date and time.")
		return
	}

	_, _, userID, _ := authz.UserCtx(r)

	req := api.NewRequest{
		Description: composeDescription(data.Category, data.Title, data.Description, data.Amount),
		City:        data.City,
		Location:    latitude + "," + longitude,
		RequestDate: requestDate,
		RequestTime: requestTime,
	}
	req.Student.ID = userID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.CreateRequest(ctx, authz.Token(r), req); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			h.renderFormWithError(w, r, data, apiErr.Message)
			return
		}
		h.ErrLog.LogAPIError(w, r, "student: create request failed", err, "/student/dashboard")
		return
	}

	h.Flash.Push(w, r, flash.Success, "Request submitted. An NGO will review it shortly.")
	http.Redirect(w, r, "/student/dashboard", http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, data newRequestData, msg string) {
	data.BaseVM = viewdata.NewBaseVM(w, r, h.Flash, "New help request", "/student/dashboard")
	data.Error = msg
	templates.Render(w, r, "student_new_request", data)
}

// composeDescription folds the category tag, title, and optional funding
// amount into the free-text description, which is the only field the
// backend stores.
func composeDescription(category, title, description, amount string) string {
	var b strings.Builder
	if category != "" {
		fmt.Fprintf(&b, "[%s] ", category)
	}
	b.WriteString(title)
	b.WriteString(": ")
	b.WriteString(description)
	if amount != "" {
		if v, err := strconv.ParseFloat(amount, 64); err == nil && v > 0 {
			fmt.Fprintf(&b, " (requested amount: %.0f)", v)
		}
	}
	return htmlsanitize.Sanitize(b.String())
}

// splitScheduled splits a datetime-local value into the date and time
// forms the backend expects.
func splitScheduled(raw string) (date, clock string, err error) {
	t, err := time.Parse("2006-01-02T15:04", raw)
	if err != nil {
		// Some browsers include seconds.
		t, err = time.Parse("2006-01-02T15:04:05", raw)
		if err != nil {
			return "", "", err
		}
	}
	return t.Format("2006-01-02"), t.Format("15:04:05"), nil
}
