// internal/app/features/student/handler.go
package student

import (
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	uierrors "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
)

// Handler serves the student area: the own-requests dashboard and the
// new-request form.
type Handler struct {
	API    *api.Client
	Flash  *flash.Queue
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(client *api.Client, flashQ *flash.Queue, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    client,
		Flash:  flashQ,
		ErrLog: errLog,
		Log:    logger,
	}
}
