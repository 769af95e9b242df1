package fanout

import (
	"context"
	"testing"
	"time"

	"github.com/riftbroker/rift/internal/queue"
)

func TestAttachAndSubscriptionsOf(t *testing.T) {
	r := New(queue.NewChannelNotifier())
	r.Attach("t", "a")
	r.Attach("t", "b")

	subs := r.SubscriptionsOf("t")
	if len(subs) != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", len(subs))
	}
}

func TestTryActivateAtMostOneActiveStream(t *testing.T) {
	r := New(queue.NewChannelNotifier())
	r.Attach("t", "a")

	_, cancel1 := context.WithCancel(context.Background())
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel1()
	defer cancel2()

	if !r.TryActivate("t", "a", cancel1) {
		t.Fatal("expected first activation to succeed")
	}
	if r.TryActivate("t", "a", cancel2) {
		t.Fatal("expected second activation to fail while the first is active")
	}

	r.Release("t", "a")
	if !r.TryActivate("t", "a", cancel2) {
		t.Fatal("expected activation to succeed after Release")
	}
}

func TestDetachCancelsActiveStream(t *testing.T) {
	r := New(queue.NewChannelNotifier())
	r.Attach("t", "a")

	cancelled := false
	cancel := func() { cancelled = true }
	r.TryActivate("t", "a", cancel)

	r.Detach("t", "a")
	if !cancelled {
		t.Fatal("expected Detach to cancel the active stream")
	}
	if subs := r.SubscriptionsOf("t"); len(subs) != 0 {
		t.Fatalf("expected subscription removed from topic set, got %v", subs)
	}
}

func TestDetachTopicCancelsAllActiveStreams(t *testing.T) {
	r := New(queue.NewChannelNotifier())
	r.Attach("t", "a")
	r.Attach("t", "b")

	var cancelledA, cancelledB bool
	r.TryActivate("t", "a", func() { cancelledA = true })
	r.TryActivate("t", "b", func() { cancelledB = true })

	names := r.DetachTopic("t")
	if len(names) != 2 {
		t.Fatalf("expected 2 detached subscription names, got %v", names)
	}
	if !cancelledA || !cancelledB {
		t.Fatal("expected DetachTopic to cancel every active stream")
	}
	if r.ActiveCount("t") != 0 {
		t.Fatal("expected no active streams left under t")
	}
}

func TestWakeAndWaitForWork(t *testing.T) {
	r := New(queue.NewChannelNotifier())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := r.WaitForWork(ctx, "t", "a")
	r.Wake(ctx, "t", "a")

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a wake signal")
	}
}

func TestActiveCountScopedPerTopic(t *testing.T) {
	r := New(queue.NewChannelNotifier())
	r.Attach("t1", "a")
	r.Attach("t2", "b")
	r.TryActivate("t1", "a", func() {})
	r.TryActivate("t2", "b", func() {})

	if r.ActiveCount("t1") != 1 {
		t.Fatalf("expected ActiveCount(t1)=1, got %d", r.ActiveCount("t1"))
	}
}
