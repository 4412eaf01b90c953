// internal/app/features/admin/dashboard.go
package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

type dashboardData struct {
	viewdata.BaseVM
	Summary    api.AdminSummary
	Activities []api.Activity
	Debug      string
	Refreshed  time.Time
	ShowSeed   bool
}

type summaryPartialData struct {
	Summary    api.AdminSummary
	Activities []api.Activity
	Debug      string
	Refreshed  time.Time
	ShowSeed   bool
	CSRFToken  string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/dashboard                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	token := authz.Token(r)
	h.Refresher.EnsureStarted(token)

	summary, activities, refreshed := h.Refresher.Snapshot()
	if refreshed.IsZero() {
		// First hit after startup: fetch synchronously so the page is not
		// empty until the next poll tick.
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		var err error
		summary, err = h.API.DashboardSummary(ctx, token)
		if err != nil {
			h.ErrLog.LogAPIError(w, r, "admin: load summary failed", err, "/")
			return
		}
		activities, err = h.API.RecentActivities(ctx, token)
		if err != nil {
			h.Log.Warn("admin: load activities failed", zap.Error(err))
		}
		refreshed = time.Now()
	}

	// Diagnostic strip is best-effort: serve whatever the poller has.
	data := dashboardData{
		BaseVM:     viewdata.NewBaseVM(w, r, h.Flash, "Admin dashboard", "/"),
		Summary:    summary,
		Activities: activities,
		Debug:      h.Refresher.Debug(),
		Refreshed:  refreshed,
		ShowSeed:   summary.Empty(),
	}

	templates.Render(w, r, "admin_dashboard", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/dashboard/summary – HTMX refresh partial (every 5s)              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeSummaryPartial(w http.ResponseWriter, r *http.Request) {
	h.Refresher.EnsureStarted(authz.Token(r))

	summary, activities, refreshed := h.Refresher.Snapshot()
	data := summaryPartialData{
		Summary:    summary,
		Activities: activities,
		Debug:      h.Refresher.Debug(),
		Refreshed:  refreshed,
		ShowSeed:   summary.Empty(),
		CSRFToken:  csrf.Token(r),
	}

	templates.Render(w, r, "admin_summary_partial", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/seed                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSeed loads demo data into an empty backend. The dashboard only
// offers it while every role count is zero.
func (h *Handler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	if err := h.API.SeedDemoData(ctx, authz.Token(r)); err != nil {
		h.ErrLog.LogAPIError(w, r, "admin: seed failed", err, "/admin/dashboard")
		return
	}

	h.Flash.Push(w, r, flash.Success, "Demo data loaded.")
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}
