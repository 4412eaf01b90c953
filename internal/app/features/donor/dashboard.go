// internal/app/features/donor/dashboard.go
package donor

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

type dashboardData struct {
	viewdata.BaseVM
	Campaigns []api.Campaign
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /donor/dashboard                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	campaigns, err := h.API.DonationNeeds(ctx, authz.Token(r))
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "donor: load needs failed", err, "/")
		return
	}

	data := dashboardData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.Flash, "Donation needs", "/"),
		Campaigns: campaigns,
	}

	templates.Render(w, r, "donor_dashboard", data)
}
