// internal/app/features/admin/handler.go
package admin

import (
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	uierrors "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
)

// Handler serves the admin area: the live dashboard, per-role user lists,
// and the moderation actions (approve, reject, suspend, delete).
type Handler struct {
	API       *api.Client
	Flash     *flash.Queue
	ErrLog    *uierrors.ErrorLogger
	Refresher *Refresher
	Log       *zap.Logger
}

func NewHandler(client *api.Client, flashQ *flash.Queue, errLog *uierrors.ErrorLogger, refresher *Refresher, logger *zap.Logger) *Handler {
	return &Handler{
		API:       client,
		Flash:     flashQ,
		ErrLog:    errLog,
		Refresher: refresher,
		Log:       logger,
	}
}
