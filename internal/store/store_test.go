package store

import (
	"testing"

	"github.com/riftbroker/rift/internal/domain"
)

func TestAppendAssignsMonotonicIndex(t *testing.T) {
	s := New()
	i1 := s.Append(domain.Message{Topic: "t", Data: []byte("a")}, 1)
	i2 := s.Append(domain.Message{Topic: "t", Data: []byte("b")}, 1)
	i3 := s.Append(domain.Message{Topic: "t", Data: []byte("c")}, 1)

	if i1 != 1 || i2 != 2 || i3 != 3 {
		t.Fatalf("expected indices 1,2,3, got %d,%d,%d", i1, i2, i3)
	}
}

func TestAppendStampsPublished(t *testing.T) {
	s := New()
	idx := s.Append(domain.Message{Topic: "t"}, 1)
	msg, ok := s.Get(idx)
	if !ok {
		t.Fatal("expected message to be present")
	}
	if msg.Published.IsZero() {
		t.Fatal("expected Published to be stamped")
	}
}

func TestGetMissingIndex(t *testing.T) {
	s := New()
	if _, ok := s.Get(999); ok {
		t.Fatal("expected ok=false for unknown index")
	}
}

func TestRetireDropsEntryAtZeroRefcount(t *testing.T) {
	s := New()
	idx := s.Append(domain.Message{Topic: "t"}, 2)

	s.Retire(idx)
	if _, ok := s.Get(idx); !ok {
		t.Fatal("message should still be present after one of two retirements")
	}

	s.Retire(idx)
	if _, ok := s.Get(idx); ok {
		t.Fatal("message should be gone after both retirements")
	}
}

func TestRetireWithZeroFanoutNeverSeeds(t *testing.T) {
	s := New()
	idx := s.Append(domain.Message{Topic: "t"}, 0)
	if _, ok := s.Get(idx); !ok {
		t.Fatal("message should be retained even with zero fan-out at append time")
	}
	// Retire on an index with no refcount entry is a no-op, not a panic or drop.
	s.Retire(idx)
	if _, ok := s.Get(idx); !ok {
		t.Fatal("Retire without a seeded refcount should not drop the message")
	}
}

func TestRetireUnknownIndexIsNoop(t *testing.T) {
	s := New()
	s.Retire(42) // must not panic
}

func TestLenReflectsLiveMessages(t *testing.T) {
	s := New()
	s.Append(domain.Message{Topic: "t"}, 1)
	idx2 := s.Append(domain.Message{Topic: "t"}, 1)
	if got := s.Len(); got != 2 {
		t.Fatalf("expected Len()=2, got %d", got)
	}
	s.Retire(idx2)
	if got := s.Len(); got != 1 {
		t.Fatalf("expected Len()=1 after retiring one entry, got %d", got)
	}
}
