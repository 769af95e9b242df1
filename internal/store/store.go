// Package store implements the per-topic Message Store: a monotonically
// indexed, append-only sequence of published messages. Publishing costs
// O(1) regardless of subscriber count; fan-out only ever carries small
// index references, never message copies.
package store

import (
	"sync"
	"time"

	"github.com/riftbroker/rift/internal/domain"
)

// Store is the per-topic Message Store. Safe for concurrent use: append
// is serializable with itself via a single mutex, and get may race
// safely against a concurrent append since entries are never mutated
// after insertion.
type Store struct {
	mu       sync.RWMutex
	nextIdx  domain.Index
	messages map[domain.Index]domain.Message
	// refcount tracks, per index, how many subscriptions still need it.
	// An index reaches zero once every subscription that ever saw it has
	// acked (or the subscription itself was torn down); at that point the
	// entry may be dropped by Retire.
	refcount map[domain.Index]int
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		nextIdx:  1,
		messages: make(map[domain.Index]domain.Message),
		refcount: make(map[domain.Index]int),
	}
}

// Append stamps Published with the current wall clock, assigns the next
// index, appends the message, and returns the assigned index. fanout is
// the number of subscriptions that will need to see this message; it
// seeds the retirement refcount so Retire can free the entry once every
// subscription has consumed it.
func (s *Store) Append(msg domain.Message, fanout int) domain.Index {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.Published = time.Now().UTC()
	idx := s.nextIdx
	s.nextIdx++
	s.messages[idx] = msg
	if fanout > 0 {
		s.refcount[idx] = fanout
	}
	return idx
}

// Get returns the message at idx and true, or false if it does not exist
// (either never published, or already retired).
func (s *Store) Get(idx domain.Index) (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.messages[idx]
	return msg, ok
}

// Retire decrements the retirement refcount for idx by one subscription's
// worth of consumption, dropping the entry once no subscription still
// needs it. Safe to call more than once for the same index by the same
// caller only if the caller itself deduplicates; the store does not
// detect double-retirement by a single subscription.
func (s *Store) Retire(idx domain.Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.refcount[idx]
	if !ok {
		return
	}
	n--
	if n <= 0 {
		delete(s.refcount, idx)
		delete(s.messages, idx)
		return
	}
	s.refcount[idx] = n
}

// Len reports the number of live (non-retired) messages currently held.
// Exposed for metrics and tests only.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
