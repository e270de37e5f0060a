package control

import (
	"context"
	"log/slog"

	"github.com/five82/lsmdash/internal/lsmdb"
	"github.com/five82/lsmdash/internal/state"
)

// ReadErrorText is stored as the read result when a read fails. It never
// equals lsmdb.NotFound.
const ReadErrorText = "Error fetching key"

// SetOutcome classifies how a Set call ended.
type SetOutcome int

const (
	// SetSkipped means a precondition failed and nothing was sent.
	SetSkipped SetOutcome = iota
	// SetApplied means the service accepted the write.
	SetApplied
	// SetFailed means the service rejected the write or was unreachable.
	SetFailed
)

func (o SetOutcome) String() string {
	switch o {
	case SetApplied:
		return "applied"
	case SetFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// SetResult reports a Set call. Err is non-nil only for SetFailed.
type SetResult struct {
	Outcome SetOutcome
	Key     string
	Err     error
}

// GetResult reports a Get call. Text is what was stored as the read result.
type GetResult struct {
	Key  string
	Text string
	Err  error
}

// StatsTrigger starts an out-of-band stats refresh. *Poller implements it.
type StatsTrigger interface {
	FetchNow()
}

// Dispatcher runs the user-initiated write and read commands and records
// their outcomes in the store.
type Dispatcher struct {
	store  *state.Store
	client lsmdb.Service
	stats  StatsTrigger
	logger *slog.Logger
}

// NewDispatcher builds a Dispatcher. stats may be nil; logger nil uses
// slog.Default().
func NewDispatcher(store *state.Store, client lsmdb.Service, stats StatsTrigger, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:  store,
		client: client,
		stats:  stats,
		logger: logger,
	}
}

// Set writes the pending key and value. It is a no-op unless both are
// non-empty and no other write is in flight. On success the pending fields are
// cleared and a stats refresh is triggered; on failure they are kept for a
// retry. The in-flight flag is released on every path.
func (d *Dispatcher) Set(ctx context.Context) SetResult {
	snap := d.store.Snapshot()
	if snap.PendingKey == "" || snap.PendingValue == "" {
		return SetResult{Outcome: SetSkipped, Key: snap.PendingKey}
	}
	if !d.store.BeginWrite() {
		return SetResult{Outcome: SetSkipped, Key: snap.PendingKey}
	}
	defer d.store.EndWrite()

	if err := d.client.Set(ctx, snap.PendingKey, snap.PendingValue); err != nil {
		d.logger.Warn("set failed",
			"key", snap.PendingKey,
			"error", err,
			"request_id", lsmdb.RequestIDOf(err),
		)
		return SetResult{Outcome: SetFailed, Key: snap.PendingKey, Err: err}
	}

	d.store.ClearPending()
	if d.stats != nil {
		d.stats.FetchNow()
	}
	d.logger.Info("set applied", "key", snap.PendingKey)
	return SetResult{Outcome: SetApplied, Key: snap.PendingKey}
}

// Get reads the query key and stores the response body verbatim, or
// ReadErrorText when the read fails.
func (d *Dispatcher) Get(ctx context.Context) GetResult {
	key := d.store.Snapshot().QuerySearchKey

	text, err := d.client.Get(ctx, key)
	if err != nil {
		d.logger.Warn("get failed",
			"key", key,
			"error", err,
			"request_id", lsmdb.RequestIDOf(err),
		)
		d.store.SetReadResult(ReadErrorText)
		return GetResult{Key: key, Text: ReadErrorText, Err: err}
	}

	d.store.SetReadResult(text)
	return GetResult{Key: key, Text: text}
}
