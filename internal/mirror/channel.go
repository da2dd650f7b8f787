// Package mirror keeps an in-memory read projection of one remote table.
//
// A Channel bundles the fetch, cache and subscribe halves of a sync
// channel: it pulls the full collection on every change event and
// replaces its snapshot wholesale. Writers live elsewhere and never touch
// the snapshot directly; their effects arrive through the event stream
// like everyone else's.
package mirror

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/comfitco/luxe-store/internal/notice"
)

// Source fetches the full current collection from the remote store,
// newest first.
type Source[T any] func(ctx context.Context) ([]T, error)

// Events is a per-table change-notification stream. Each receive means
// "something changed"; the payload is irrelevant.
type Events interface {
	C() <-chan struct{}
	Close() error
}

// Channel mirrors one remote collection. It owns its snapshot
// exclusively; readers get copies.
type Channel[T any] struct {
	name   string
	source Source[T]
	events Events
	board  *notice.Board

	// issued hands out a sequence number per fetch so that a slow,
	// stale fetch can never overwrite the result of a later one.
	issued atomic.Uint64

	mu      sync.RWMutex
	items   []T
	applied uint64
	loading bool

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func New[T any](name string, source Source[T], events Events, board *notice.Board) *Channel[T] {
	return &Channel[T]{
		name:    name,
		source:  source,
		events:  events,
		board:   board,
		loading: true,
		stop:    make(chan struct{}),
	}
}

// Refresh pulls the collection and replaces the snapshot. On failure the
// previous snapshot stays in place (stale data beats a flash of nothing)
// and a notice is posted. A result is dropped if a later-issued fetch has
// already been applied.
func (c *Channel[T]) Refresh(ctx context.Context) error {
	seq := c.issued.Add(1)

	items, err := c.source(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.board.Errorf("Failed to load %s", c.name)
		return fmt.Errorf("refresh %s: %w", c.name, err)
	}

	if seq <= c.applied {
		return nil
	}
	c.applied = seq
	c.items = items

	return nil
}

// Start performs one synchronous initial refresh and then reruns Refresh
// on every change event until Stop is called or ctx is cancelled.
func (c *Channel[T]) Start(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		log.Printf("initial refresh: %v", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case _, ok := <-c.events.C():
				if !ok {
					return
				}
				if err := c.Refresh(ctx); err != nil {
					log.Printf("refresh on change: %v", err)
				}
			}
		}
	}()
}

// Stop closes the change subscription and stops triggering refreshes. It
// is idempotent and safe even if Start was never called; an in-flight
// Refresh finishes and its result is applied only if still the newest.
func (c *Channel[T]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
		if err := c.events.Close(); err != nil {
			log.Printf("close %s events: %v", c.name, err)
		}
	})
	c.wg.Wait()
}

// Snapshot returns a copy of the current collection.
func (c *Channel[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether the first fetch has yet to complete.
func (c *Channel[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}
