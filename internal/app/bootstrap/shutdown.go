// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down background resources. The only long-lived
// one is the admin summary poller.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.AdminRefresher != nil {
		logger.Info("stopping admin dashboard refresher")
		deps.AdminRefresher.Stop()
	}
	return nil
}
