package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Flash *flash.Queue
	Log   *zap.Logger
}

func NewHandler(flashQ *flash.Queue, logger *zap.Logger) *Handler {
	return &Handler{
		Flash: flashQ,
		Log:   logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "Welcome", "/"),
	}

	templates.Render(w, r, "home", data)
}
