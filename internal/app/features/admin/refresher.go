// internal/app/features/admin/refresher.go
package admin

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/poll"
)

// Refresher keeps a warm snapshot of the admin summary and activity feed.
// The backend is polled on a fixed interval using the token of the most
// recent admin who opened the dashboard, so the HTMX refresh partials can
// be served from memory instead of fanning out two backend calls per tick
// per open tab.
type Refresher struct {
	api      *api.Client
	log      *zap.Logger
	interval time.Duration
	timeout  time.Duration

	mu         sync.Mutex
	token      string
	poller     *poll.Poller
	summary    api.AdminSummary
	activities []api.Activity
	debug      string
	refreshed  time.Time
}

// NewRefresher builds the refresher. Polling does not start until an admin
// first opens the dashboard (EnsureStarted).
func NewRefresher(client *api.Client, interval, timeout time.Duration, logger *zap.Logger) *Refresher {
	return &Refresher{
		api:      client,
		log:      logger,
		interval: interval,
		timeout:  timeout,
	}
}

// EnsureStarted begins polling with the given token, or swaps the token if
// a different admin session takes over.
func (f *Refresher) EnsureStarted(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = token
	if f.poller == nil {
		f.poller = poll.New("admin-dashboard", f.interval, f.timeout, f.refresh, f.log)
		f.poller.Start()
	}
}

// Snapshot returns the cached summary, activities, and when they were last
// refreshed. The zero time means no refresh has succeeded yet.
func (f *Refresher) Snapshot() (api.AdminSummary, []api.Activity, time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summary, f.activities, f.refreshed
}

// Debug returns the backend's latest diagnostic dump, or the empty string
// until a poll has fetched one.
func (f *Refresher) Debug() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.debug
}

// Stop cancels the polling subscription. Safe to call before EnsureStarted.
func (f *Refresher) Stop() {
	f.mu.Lock()
	p := f.poller
	f.mu.Unlock()
	if p != nil {
		p.Stop()
	}
}

func (f *Refresher) refresh(ctx context.Context) error {
	f.mu.Lock()
	token := f.token
	f.mu.Unlock()
	if token == "" {
		return nil
	}

	summary, err := f.api.DashboardSummary(ctx, token)
	if err != nil {
		return err
	}
	// The activity feed is best-effort; a failure must not discard the
	// fresh summary.
	activities, actErr := f.api.RecentActivities(ctx, token)

	// Diagnostic dump failures are swallowed entirely; the strip just
	// keeps its last value.
	debug, dbgErr := f.api.DebugInfo(ctx, token)

	f.mu.Lock()
	f.summary = summary
	if actErr == nil {
		f.activities = activities
	}
	if dbgErr == nil {
		f.debug = debug
	}
	f.refreshed = time.Now()
	f.mu.Unlock()

	return actErr
}
