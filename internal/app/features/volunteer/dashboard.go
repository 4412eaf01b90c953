// internal/app/features/volunteer/dashboard.go
package volunteer

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/navigation"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

type dashboardData struct {
	viewdata.BaseVM
	City     string
	Pool     []api.HelpRequest // open requests in the chosen city
	Assigned []api.HelpRequest // assigned, waiting for this volunteer's acceptance
	Active   []api.HelpRequest // accepted or in progress
	Done     []api.HelpRequest
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /volunteer/dashboard?city=                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	_, _, volunteerID, _ := authz.UserCtx(r)
	token := authz.Token(r)
	city := strings.TrimSpace(query.Get(r, "city"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tasks, err := h.API.VolunteerTasks(ctx, token, volunteerID)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "volunteer: load tasks failed", err, "/")
		return
	}

	var pool []api.HelpRequest
	if city != "" {
		pool, err = h.API.NearbyRequests(ctx, token, city)
		if err != nil {
			// The pool is a convenience; the volunteer's own tasks still
			// render when the nearby lookup fails.
			h.Log.Warn("volunteer: nearby lookup failed", zap.String("city", city), zap.Error(err))
		}
	}

	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "Volunteer dashboard", "/"),
		City:   city,
		Pool:   openOnly(pool),
	}
	for _, t := range tasks {
		switch {
		case t.Status == api.StatusAssigned:
			data.Assigned = append(data.Assigned, t)
		case t.Status == api.StatusAccepted || t.Status == api.StatusInProgress:
			data.Active = append(data.Active, t)
		case t.Status == api.StatusCompleted:
			data.Done = append(data.Done, t)
		}
	}

	templates.Render(w, r, "volunteer_dashboard", data)
}

// openOnly keeps the requests a volunteer can still claim.
func openOnly(requests []api.HelpRequest) []api.HelpRequest {
	out := make([]api.HelpRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status == api.StatusPending {
			out = append(out, r)
		}
	}
	return out
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /volunteer/requests/{id}/{claim|accept|reject|complete}                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	_, _, volunteerID, _ := authz.UserCtx(r)
	h.requestAction(w, r, "claim", func(ctx context.Context, token string, requestID int64) error {
		return h.API.ClaimRequest(ctx, token, requestID, volunteerID)
	}, "Request claimed. Accept it under your tasks to start.")
}

func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.requestAction(w, r, "accept", h.API.AcceptAssignment, "Assignment accepted.")
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.requestAction(w, r, "reject", h.API.RejectAssignment, "Assignment declined.")
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	h.requestAction(w, r, "complete", h.API.CompleteRequest, "Request marked complete. Thank you!")
}

func (h *Handler) requestAction(w http.ResponseWriter, r *http.Request, name string, call func(context.Context, string, int64) error, done string) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "volunteer: bad request id", err, "Invalid request.", "/volunteer/dashboard")
		return
	}

	back := navigation.SafeBackURL(r, navigation.VolunteerBackURL)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := call(ctx, authz.Token(r), requestID); err != nil {
		h.ErrLog.LogAPIError(w, r, "volunteer: "+name+" failed", err, back)
		return
	}

	h.Flash.Push(w, r, flash.Success, done)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
