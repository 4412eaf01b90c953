// internal/app/features/ngo/requests.go
package ngo

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/navigation"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ngo/requests/{id}/accept                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	_, _, ngoID, _ := authz.UserCtx(r)
	h.requestAction(w, r, "accept", func(ctx context.Context, token string, requestID int64) error {
		return h.API.AcceptRequest(ctx, token, requestID, ngoID)
	}, "Request accepted.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ngo/requests/{id}/assign  (volunteer_id form field)                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	volunteerID, err := strconv.ParseInt(r.FormValue("volunteer_id"), 10, 64)
	if err != nil || volunteerID == 0 {
		h.ErrLog.LogBadRequest(w, r, "ngo: bad volunteer id", err, "Choose a volunteer to assign.", navigation.SafeBackURL(r, navigation.NGOBackURL))
		return
	}

	_, _, ngoID, _ := authz.UserCtx(r)
	h.requestAction(w, r, "assign", func(ctx context.Context, token string, requestID int64) error {
		return h.API.AssignVolunteer(ctx, token, requestID, volunteerID, ngoID)
	}, "Volunteer assigned.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ngo/requests/{id}/funds  (amount form field)                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAllocateFunds(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("amount")), 64)
	if err != nil || amount <= 0 {
		h.ErrLog.LogBadRequest(w, r, "ngo: bad fund amount", err, "Enter a positive amount.", navigation.SafeBackURL(r, navigation.NGOBackURL))
		return
	}

	h.requestAction(w, r, "fund", func(ctx context.Context, token string, requestID int64) error {
		return h.API.AllocateFunds(ctx, token, requestID, amount)
	}, "Funds allocated.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ngo/requests/{id}/delete                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	h.requestAction(w, r, "delete", h.API.DeleteRequest, "Request deleted.")
}

func (h *Handler) requestAction(w http.ResponseWriter, r *http.Request, name string, call func(context.Context, string, int64) error, done string) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "ngo: bad request id", err, "Invalid request.", "/ngo/dashboard")
		return
	}

	back := navigation.SafeBackURL(r, navigation.NGOBackURL)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := call(ctx, authz.Token(r), requestID); err != nil {
		h.ErrLog.LogAPIError(w, r, "ngo: "+name+" request failed", err, back)
		return
	}

	h.Flash.Push(w, r, flash.Success, done)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
