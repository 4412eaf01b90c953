// internal/app/features/ngo/dashboard.go
package ngo

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

// tabs are the dashboard's sections; an unknown tab falls back to overview.
var tabs = map[string]bool{
	"overview":   true,
	"requests":   true,
	"volunteers": true,
	"campaigns":  true,
}

type dashboardData struct {
	viewdata.BaseVM
	Tab    string
	Filter api.RequestFilter
	City   string

	Stats      api.NGOStats
	Requests   []api.HelpRequest
	Volunteers []api.UserRecord
	Campaigns  []api.Campaign
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /ngo/dashboard?tab=&filter=&city=                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDashboard fetches only what the selected tab shows. Each tab is an
// independent fetch-render cycle; actions redirect back to the tab they
// came from.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	_, _, ngoID, _ := authz.UserCtx(r)
	token := authz.Token(r)

	tab := strings.ToLower(query.Get(r, "tab"))
	if !tabs[tab] {
		tab = "overview"
	}
	filter := api.RequestFilter(strings.ToLower(query.Get(r, "filter")))
	city := strings.TrimSpace(query.Get(r, "city"))

	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "NGO dashboard", "/"),
		Tab:    tab,
		Filter: filter,
		City:   city,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var err error
	switch tab {
	case "overview":
		data.Stats, err = h.API.NGODashboardStats(ctx, token, ngoID)
	case "requests":
		var all []api.HelpRequest
		all, err = h.API.AllRequests(ctx, token, ngoID)
		if err == nil {
			data.Requests = api.FilterRequests(all, filter)
			// The assign modal needs the volunteer list; a denied lookup
			// already comes back as an empty list.
			data.Volunteers, _ = h.API.VolunteersByCity(ctx, token, city)
		}
	case "volunteers":
		data.Volunteers, err = h.API.VolunteersByCity(ctx, token, city)
	case "campaigns":
		data.Campaigns, err = h.API.MyCampaigns(ctx, token, ngoID)
	}
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "ngo: load "+tab+" failed", err, "/")
		return
	}

	h.Log.Debug("ngo dashboard", zap.String("tab", tab), zap.Int64("ngo_id", ngoID))
	templates.Render(w, r, "ngo_dashboard", data)
}
