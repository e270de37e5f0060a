package control

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/five82/lsmdash/internal/lsmdb"
	"github.com/five82/lsmdash/internal/state"
)

// DefaultPollInterval is the stats refresh cadence.
const DefaultPollInterval = 2 * time.Second

// StatsFetcher is the slice of lsmdb.Service the poller needs.
type StatsFetcher interface {
	FetchStats(ctx context.Context) (lsmdb.Stats, error)
}

// PollerOptions configure a Poller.
type PollerOptions struct {
	Interval time.Duration // zero uses DefaultPollInterval
	Ordered  bool          // drop stats responses older than the applied one
	Logger   *slog.Logger  // nil uses slog.Default()
}

// Poller refreshes the store's stats on a fixed cadence. Fetches are fire and
// forget: a slow fetch never holds back the next tick, and deactivating the
// poller does not cancel fetches already in flight.
type Poller struct {
	store    *state.Store
	client   StatsFetcher
	interval time.Duration
	ordered  bool
	logger   *slog.Logger

	seq      atomic.Uint64
	inflight sync.WaitGroup

	mu     sync.Mutex
	base   context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller builds an inactive Poller.
func NewPoller(store *state.Store, client StatsFetcher, opts PollerOptions) *Poller {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		store:    store,
		client:   client,
		interval: interval,
		ordered:  opts.Ordered,
		logger:   logger,
		base:     context.Background(),
	}
}

// Activate fetches once immediately and then once per interval until
// Deactivate is called or ctx is cancelled. It returns immediately and is a
// no-op while already active.
func (p *Poller) Activate(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.base = context.WithoutCancel(ctx)
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	p.FetchNow()
	go p.loop(loopCtx, done)
}

// Deactivate stops future ticks and returns once the tick loop has exited.
// Fetches already in flight still complete and update the store.
func (p *Poller) Deactivate() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Active reports whether the tick loop is running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// FetchNow starts one fetch outside the regular cadence.
func (p *Poller) FetchNow() {
	p.mu.Lock()
	ctx := p.base
	p.mu.Unlock()

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		p.fetch(ctx)
	}()
}

// Wait blocks until every fetch started so far has resolved.
func (p *Poller) Wait() {
	p.inflight.Wait()
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		// select picks at random when both are ready
		if ctx.Err() != nil {
			return
		}
		p.FetchNow()
	}
}

func (p *Poller) fetch(ctx context.Context) {
	var seq uint64
	if p.ordered {
		seq = p.seq.Add(1)
	}

	stats, err := p.client.FetchStats(ctx)
	if err != nil {
		p.logger.Warn("stats poll failed",
			"error", err,
			"request_id", lsmdb.RequestIDOf(err),
		)
		return
	}
	if !p.store.UpdateStats(seq, stats) {
		p.logger.Debug("stale stats dropped", "seq", seq)
	}
}
