// internal/app/features/admin/users.go
package admin

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/navigation"
	"github.com/helpbridge/helpbridge-web/internal/app/system/paging"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

// managedRoles maps the URL segment to the role name the backend expects.
var managedRoles = map[string]string{
	"students":   "Student",
	"volunteers": "Volunteer",
	"ngos":       "NGO",
	"donors":     "Donor",
}

type userListData struct {
	viewdata.BaseVM
	Segment string // URL segment, e.g. "students"
	Role    string // backend role name
	City    string
	Users   []api.UserRecord
	Page    paging.Range
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/users/{segment}?city=                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeUsers(w http.ResponseWriter, r *http.Request) {
	segment := strings.ToLower(chi.URLParam(r, "segment"))
	role, ok := managedRoles[segment]
	if !ok {
		http.NotFound(w, r)
		return
	}
	city := strings.TrimSpace(query.Get(r, "city"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users, err := h.API.UsersByRole(ctx, authz.Token(r), role, city)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "admin: load "+segment+" failed", err, "/admin/dashboard")
		return
	}

	page, pageRange := paging.Window(users, paging.ParseStart(r))

	data := userListData{
		BaseVM:  viewdata.NewBaseVM(w, r, h.Flash, "Manage "+segment, "/admin/dashboard"),
		Segment: segment,
		Role:    role,
		City:    city,
		Users:   page,
		Page:    pageRange,
	}

	templates.Render(w, r, "admin_users", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/users/{id}/{approve|reject|suspend|delete}                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "approve", h.API.ApproveUser, "User approved.")
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "reject", h.API.RejectUser, "User rejected.")
}

func (h *Handler) HandleSuspend(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "suspend", h.API.SuspendUser, "User suspended.")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "delete", h.API.DeleteUser, "User deleted.")
}

func (h *Handler) userAction(w http.ResponseWriter, r *http.Request, name string, call func(context.Context, string, int64) error, done string) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "admin: bad user id", err, "Invalid user.", "/admin/dashboard")
		return
	}

	back := navigation.SafeBackURL(r, navigation.AdminBackURL)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := call(ctx, authz.Token(r), userID); err != nil {
		h.ErrLog.LogAPIError(w, r, "admin: "+name+" user failed", err, back)
		return
	}

	h.Flash.Push(w, r, flash.Success, done)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
