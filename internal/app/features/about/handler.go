// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

type Handler struct {
	Flash *flash.Queue
	Log   *zap.Logger
}

func NewHandler(flashQ *flash.Queue, logger *zap.Logger) *Handler {
	return &Handler{Flash: flashQ, Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(w, r, h.Flash, "About HelpBridge", "/"),
	}

	templates.Render(w, r, "about", data)
}
