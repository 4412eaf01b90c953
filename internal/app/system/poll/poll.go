// internal/app/system/poll/poll.go
package poll

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Poller runs a refresh function on a fixed interval until stopped. The
// admin dashboard uses one to keep its summary and activity feed warm;
// stopping the poller is how a page subscription is cancelled, so a
// dismissed dashboard never leaves a ticking goroutine behind.
type Poller struct {
	name     string
	log      *zap.Logger
	interval time.Duration
	timeout  time.Duration
	refresh  func(ctx context.Context) error
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a poller that calls refresh every interval. Each call gets a
// context bounded by timeout. The poller does not start until Start.
func New(name string, interval, timeout time.Duration, refresh func(ctx context.Context) error, logger *zap.Logger) *Poller {
	return &Poller{
		name:     name,
		log:      logger,
		interval: interval,
		timeout:  timeout,
		refresh:  refresh,
		stopCh:   make(chan struct{}),
	}
}

// Start runs one refresh immediately, then begins the interval loop.
func (p *Poller) Start() {
	p.wg.Add(1)
	go p.run()
	p.log.Info("poller started",
		zap.String("name", p.name),
		zap.Duration("interval", p.interval))
}

// Stop signals the loop to exit and waits for it to finish. Safe to call
// more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		p.wg.Wait()
		p.log.Info("poller stopped", zap.String("name", p.name))
	})
}

func (p *Poller) run() {
	defer p.wg.Done()

	p.tick()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Poller) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.refresh(ctx); err != nil {
		p.log.Warn("poll refresh failed",
			zap.String("name", p.name),
			zap.Error(err))
	}
}
