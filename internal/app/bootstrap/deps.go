// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/features/admin"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
)

// Deps holds backend dependencies for the app. This client owns no
// storage; everything it shows comes from the HelpBridge REST backend.
type Deps struct {
	API            *api.Client
	AdminRefresher *admin.Refresher
}

// Connect builds the backend API client and the admin summary cache.
// It fills WAFFLE's ConnectDB slot: the REST backend is this app's only
// "database".
func Connect(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client := api.New(appCfg.BackendBaseURL, appCfg.BackendTimeout, logger)

	refresher := admin.NewRefresher(client, appCfg.AdminPollInterval, timeouts.Medium(), logger)

	return Deps{
		API:            client,
		AdminRefresher: refresher,
	}, nil
}

// VerifyBackend fills WAFFLE's EnsureSchema slot. There is no schema to
// ensure; instead it pings the backend so a misconfigured base URL is
// reported at startup rather than on the first user request. The ping is
// advisory: the app still starts when the backend is down.
func VerifyBackend(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	if err := deps.API.Ping(pingCtx); err != nil {
		logger.Warn("backend unreachable at startup",
			zap.String("backend_base_url", appCfg.BackendBaseURL),
			zap.Error(err))
		return nil
	}

	logger.Info("backend reachable", zap.String("backend_base_url", appCfg.BackendBaseURL))
	return nil
}
