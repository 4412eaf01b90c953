// internal/app/features/donor/handler.go
package donor

import (
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	uierrors "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
)

// Handler serves the donor area: the donation-needs list and the payment
// flow (order, checkout overlay or mock bypass, verification).
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
