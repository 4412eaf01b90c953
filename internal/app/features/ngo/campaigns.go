// internal/app/features/ngo/campaigns.go
package ngo

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/htmlsanitize"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

type campaignFormData struct {
	viewdata.BaseVM
	Error string

	Title        string
	Description  string
	Category     string
	City         string
	TargetAmount string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /ngo/campaigns/new                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNewCampaign(w http.ResponseWriter, r *http.Request) {
	data := campaignFormData{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "New campaign", "/ngo/dashboard?tab=campaigns"),
	}
	templates.Render(w, r, "ngo_new_campaign", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ngo/campaigns                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "ngo: bad campaign form", err, "Invalid form submission.", "/ngo/campaigns/new")
		return
	}

	data := campaignFormData{
		Title:        htmlsanitize.SanitizeAndTrim(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Category:     strings.TrimSpace(r.FormValue("category")),
		City:         strings.TrimSpace(r.FormValue("city")),
		TargetAmount: strings.TrimSpace(r.FormValue("target_amount")),
	}

	if data.Title == "" || data.Description == "" || data.TargetAmount == "" {
		h.renderCampaignForm(w, r, data, "Title, description, and target amount are required.")
		return
	}
	target, err := strconv.ParseFloat(data.TargetAmount, 64)
	if err != nil || target <= 0 {
		h.renderCampaignForm(w, r, data, "Enter a positive target amount.")
		return
	}

	_, _, ngoID, _ := authz.UserCtx(r)

	campaign := api.NewCampaign{
		Title:        data.Title,
		Description:  htmlsanitize.Sanitize(data.Description),
		Category:     data.Category,
		City:         data.City,
		TargetAmount: target,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.CreateCampaign(ctx, authz.Token(r), ngoID, campaign); err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			h.renderCampaignForm(w, r, data, apiErr.Message)
			return
		}
		h.ErrLog.LogAPIError(w, r, "ngo: create campaign failed", err, "/ngo/dashboard?tab=campaigns")
		return
	}

	h.Flash.Push(w, r, flash.Success, "Campaign published.")
	http.Redirect(w, r, "/ngo/dashboard?tab=campaigns", http.StatusSeeOther)
}

func (h *Handler) renderCampaignForm(w http.ResponseWriter, r *http.Request, data campaignFormData, msg string) {
	data.BaseVM = viewdata.NewBaseVM(w, r, h.Flash, "New campaign", "/ngo/dashboard?tab=campaigns")
	data.Error = msg
	templates.Render(w, r, "ngo_new_campaign", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ngo/campaigns/{id}/complete                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "ngo: bad campaign id", err, "Invalid campaign.", "/ngo/dashboard?tab=campaigns")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.API.CompleteCampaign(ctx, authz.Token(r), postID); err != nil {
		h.ErrLog.LogAPIError(w, r, "ngo: complete campaign failed", err, "/ngo/dashboard?tab=campaigns")
		return
	}

	h.Flash.Push(w, r, flash.Success, "Campaign closed.")
	http.Redirect(w, r, "/ngo/dashboard?tab=campaigns", http.StatusSeeOther)
}
