package state

import (
	"sync"
	"time"

	"github.com/five82/lsmdash/internal/lsmdb"
)

// Snapshot is a point-in-time copy of the dashboard session state.
type Snapshot struct {
	PendingKey     string
	PendingValue   string
	QuerySearchKey string

	LastReadResult string
	HasReadResult  bool

	Stats        lsmdb.Stats
	HasStats     bool
	StatsUpdated time.Time

	WriteInFlight bool
}

// CanSet reports whether a write may be dispatched from this snapshot.
func (s Snapshot) CanSet() bool {
	return s.PendingKey != "" && s.PendingValue != "" && !s.WriteInFlight
}

// Store coordinates concurrent access to the session state. The zero value is
// the empty session.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	statsSeq uint64
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// SetPendingKey records the key typed for the next write.
func (s *Store) SetPendingKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.PendingKey = key
}

// SetPendingValue records the value typed for the next write.
func (s *Store) SetPendingValue(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.PendingValue = value
}

// SetQuerySearchKey records the key typed for the next read.
func (s *Store) SetQuerySearchKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.QuerySearchKey = key
}

// ClearPending empties both write fields.
func (s *Store) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.PendingKey = ""
	s.snapshot.PendingValue = ""
}

// SetReadResult replaces the last read outcome.
func (s *Store) SetReadResult(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastReadResult = text
	s.snapshot.HasReadResult = true
}

// UpdateStats replaces the stats. A zero seq is always applied. A positive seq
// lower than the last applied one is stale and dropped; the return value
// reports whether the stats were applied.
func (s *Store) UpdateStats(seq uint64, stats lsmdb.Stats) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != 0 {
		if seq < s.statsSeq {
			return false
		}
		s.statsSeq = seq
	}
	s.snapshot.Stats = stats
	s.snapshot.HasStats = true
	s.snapshot.StatsUpdated = time.Now()
	return true
}

// BeginWrite marks a write as in flight. It returns false without changing
// anything when another write already is.
func (s *Store) BeginWrite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.WriteInFlight {
		return false
	}
	s.snapshot.WriteInFlight = true
	return true
}

// EndWrite releases the in-flight flag.
func (s *Store) EndWrite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.WriteInFlight = false
}
