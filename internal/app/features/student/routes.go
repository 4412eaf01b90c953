// internal/app/features/student/routes.go
package student

import (
	"github.com/go-chi/chi/v5"

	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("student"))

		pr.Get("/dashboard", h.ServeDashboard)
		pr.Get("/requests/new", h.ServeNewRequest)
		pr.Post("/requests", h.HandleCreatePost)
	})

	return r
}
