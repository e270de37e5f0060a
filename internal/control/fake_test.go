package control

import (
	"context"
	"sync"

	"github.com/five82/lsmdash/internal/lsmdb"
)

// fakeService is a scriptable lsmdb.Service.
type fakeService struct {
	mu sync.Mutex

	statsCalls int
	statsFn    func(ctx context.Context, call int) (lsmdb.Stats, error)
	started    chan int

	sets  []lsmdb.SetRequest
	setFn func(key, value string) error

	gets  []string
	getFn func(key string) (string, error)
}

var _ lsmdb.Service = (*fakeService)(nil)

func (f *fakeService) FetchStats(ctx context.Context) (lsmdb.Stats, error) {
	f.mu.Lock()
	f.statsCalls++
	call := f.statsCalls
	fn := f.statsFn
	started := f.started
	f.mu.Unlock()

	if started != nil {
		select {
		case started <- call:
		default:
		}
	}
	if fn == nil {
		return lsmdb.Stats{}, nil
	}
	return fn(ctx, call)
}

func (f *fakeService) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	f.sets = append(f.sets, lsmdb.SetRequest{Key: key, Value: value})
	fn := f.setFn
	f.mu.Unlock()

	if fn == nil {
		return nil
	}
	return fn(key, value)
}

func (f *fakeService) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	f.gets = append(f.gets, key)
	fn := f.getFn
	f.mu.Unlock()

	if fn == nil {
		return lsmdb.NotFound, nil
	}
	return fn(key)
}

func (f *fakeService) StatsCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statsCalls
}

func (f *fakeService) Sets() []lsmdb.SetRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]lsmdb.SetRequest(nil), f.sets...)
}

func (f *fakeService) Gets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.gets...)
}

// countingTrigger records FetchNow calls.
type countingTrigger struct {
	mu    sync.Mutex
	calls int
}

func (c *countingTrigger) FetchNow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
}

func (c *countingTrigger) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
