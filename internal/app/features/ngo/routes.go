// internal/app/features/ngo/routes.go
package ngo

import (
	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("ngo"))

		pr.Get("/dashboard", h.ServeDashboard)

		pr.Post("/requests/{id}/accept", h.HandleAccept)
		pr.Post("/requests/{id}/assign", h.HandleAssign)
		pr.Post("/requests/{id}/funds", h.HandleAllocateFunds)
		pr.Post("/requests/{id}/delete", h.HandleDeleteRequest)

		pr.Get("/campaigns/new", h.ServeNewCampaign)
		pr.Post("/campaigns", h.HandleCreateCampaign)
		pr.Post("/campaigns/{id}/complete", h.HandleCompleteCampaign)
	})

	return r
}
