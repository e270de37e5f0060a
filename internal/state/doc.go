// Package state holds the dashboard session state shared by the poller, the
// command dispatcher and the UI.
//
// # Overview
//
// Store owns a single Snapshot guarded by a sync.RWMutex. Each exported
// mutation takes the write lock for its whole body, so a reader calling
// Snapshot never observes half of an update. There is no multi-field
// transaction: the stats, the write fields, the read result and the in-flight
// flag are updated independently.
//
//	Poller ────────── UpdateStats ──────┐
//	Dispatcher ─ BeginWrite/EndWrite ───┤
//	           ─ ClearPending ──────────┼──> Store ──> Snapshot() ──> UI
//	           ─ SetReadResult ─────────┤
//	UI ─ SetPendingKey/Value/Query ─────┘
//
// # Invariants
//
//   - WriteInFlight is set only through BeginWrite, which refuses while it is
//     already set. At most one write is ever outstanding.
//   - Stats change only through UpdateStats, which the poller calls on
//     success. Failed fetches never reach the store.
//   - PendingKey and PendingValue are cleared only through ClearPending, which
//     the dispatcher calls after an accepted write.
//   - Every read outcome goes through SetReadResult, so a failed read never
//     leaves an older result on screen.
//
// # Stats Ordering
//
// Stats fetches may overlap and resolve out of order. UpdateStats with seq 0
// applies whatever resolves last. A positive seq turns on stale-response
// dropping: anything older than the last applied seq is ignored.
//
// # Zero Value
//
// The zero Store is ready to use and represents a fresh session:
//
//	store := &state.Store{}
//	snap := store.Snapshot() // all fields empty, HasStats=false
package state
