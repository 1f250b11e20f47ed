package services

import (
	"sync"

	"tessera/internal/ports"
)

// ChangeFeed sits between a watcher and the status engine. Each batch is
// applied to the engine first, then announced on C. Announcements coalesce:
// a reader that falls behind sees one pending batch holding the union of
// everything it missed.
type ChangeFeed struct {
	c       chan struct{}
	closed  bool
	engine  ports.StatusInvalidator
	full    bool // Pending batch needs a full rescan
	mu      sync.Mutex
	pending []string
}

var _ ports.StatusInvalidator = (*ChangeFeed)(nil)

// NewChangeFeed wraps engine
func NewChangeFeed(engine ports.StatusInvalidator) *ChangeFeed {
	return &ChangeFeed{
		c:      make(chan struct{}, 1),
		engine: engine,
	}
}

// Invalidate implements ports.StatusInvalidator
func (f *ChangeFeed) Invalidate(root string, changedPaths []string) {
	f.engine.Invalidate(root, changedPaths)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if len(changedPaths) == 0 {
		f.full = true
		f.pending = nil
	} else if !f.full {
		f.pending = append(f.pending, changedPaths...)
	}
	select {
	case f.c <- struct{}{}:
	default:
	}
}

// C fires when at least one batch is pending
func (f *ChangeFeed) C() <-chan struct{} {
	return f.c
}

// Drain returns the pending paths and resets them. A nil slice means the
// whole tree may have changed.
func (f *ChangeFeed) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := f.pending
	if f.full {
		paths = nil
	}
	f.full = false
	f.pending = nil
	return paths
}

// Close stops announcements. Invalidations still reach the engine.
func (f *ChangeFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.c)
	}
}
