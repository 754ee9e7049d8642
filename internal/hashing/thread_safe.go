package hashing

import (
	"sync"
	"sync/atomic"
)

// tableKey identifies a position searched to a given depth.
type tableKey struct {
	hash  uint64
	depth int
}

// PerftTable caches perft node counts by position and depth. It is safe for
// concurrent use by multiple goroutines.
type PerftTable struct {
	mu          sync.RWMutex
	entries     map[tableKey]uint64
	maxCapacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPerftTable creates a new table.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the node count stored for the position at depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.RLock()
	nodes, ok := t.entries[tableKey{hash, depth}]
	t.mu.RUnlock()

	if ok {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	return nodes, ok
}

// Store records the node count for the position at depth. Once the table is
// full new entries are dropped.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isFullLocked() {
		return
	}
	t.entries[tableKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() uint64 {
	return t.hits.Load()
}

// Misses returns the number of failed lookups.
func (t *PerftTable) Misses() uint64 {
	return t.misses.Load()
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFullLocked()
}

func (t *PerftTable) isFullLocked() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table and its counters.
func (t *PerftTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[tableKey]uint64)
	t.hits.Store(0)
	t.misses.Store(0)
}
