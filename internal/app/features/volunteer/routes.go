// internal/app/features/volunteer/routes.go
package volunteer

import (
	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("volunteer"))

		pr.Get("/dashboard", h.ServeDashboard)
		pr.Post("/requests/{id}/claim", h.HandleClaim)
		pr.Post("/requests/{id}/accept", h.HandleAccept)
		pr.Post("/requests/{id}/reject", h.HandleReject)
		pr.Post("/requests/{id}/complete", h.HandleComplete)
	})

	return r
}
