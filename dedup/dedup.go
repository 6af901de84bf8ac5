// Package dedup implements the deduplication sets: append-only,
// insertion-checked sets of canonical encodings, shared across
// connection-set evaluations by the outer driver.
//
// Unlike the per-evaluation structures (models, interval vectors,
// union-finds), these sets outlive a single evaluation and may be shared
// by a driver that parallelizes across connection sets, so they carry a
// mutex.
package dedup

import (
	"sync"

	"github.com/katalvlaran/brickcount/canon"
)

// TreeSet holds the non-cyclic encodings — connection sets with no
// loop-closing connections, keyed on Required alone.
type TreeSet struct {
	mu   sync.Mutex
	seen map[uint64]bool
}

// NewTreeSet returns an empty TreeSet.
func NewTreeSet() *TreeSet { return &TreeSet{seen: make(map[uint64]bool)} }

// Insert reports whether required was newly added (true) or was already
// present (false, meaning the caller reached an already-counted
// canonical form via a different connection-list permutation and must
// skip it).
func (s *TreeSet) Insert(required uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[required] {
		return false
	}
	s.seen[required] = true

	return true
}

// Len returns the number of distinct encodings recorded.
func (s *TreeSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.seen)
}

// CyclicSet holds the cyclic encodings — those carrying a non-empty
// Extra component, keyed on the full pair.
type CyclicSet struct {
	mu   sync.Mutex
	seen map[canon.Encoding]bool
}

// NewCyclicSet returns an empty CyclicSet.
func NewCyclicSet() *CyclicSet { return &CyclicSet{seen: make(map[canon.Encoding]bool)} }

// Insert reports whether enc was newly added.
func (s *CyclicSet) Insert(enc canon.Encoding) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[enc] {
		return false
	}
	s.seen[enc] = true

	return true
}

// Len returns the number of distinct encodings recorded.
func (s *CyclicSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.seen)
}
