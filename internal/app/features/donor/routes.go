// internal/app/features/donor/routes.go
package donor

import (
	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("donor"))

		pr.Get("/dashboard", h.ServeDashboard)
		pr.Post("/donate/{id}", h.HandleDonate)
		pr.Post("/verify", h.HandleVerify)
	})

	return r
}
