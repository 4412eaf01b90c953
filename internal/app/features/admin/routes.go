// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/dashboard", h.ServeDashboard)
		pr.Get("/dashboard/summary", h.ServeSummaryPartial)
		pr.Post("/seed", h.HandleSeed)

		pr.Get("/users/{segment}", h.ServeUsers)
		pr.Post("/users/{id}/approve", h.HandleApprove)
		pr.Post("/users/{id}/reject", h.HandleReject)
		pr.Post("/users/{id}/suspend", h.HandleSuspend)
		pr.Post("/users/{id}/delete", h.HandleDelete)
	})

	return r
}
