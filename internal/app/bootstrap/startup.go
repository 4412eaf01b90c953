// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/app/resources"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after the backend
// client is built, but before the HTTP handler. It loads the shared
// template partials and applies any configured timeout overrides.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
		Batch:  appCfg.TimeoutBatch,
	})

	return nil
}
