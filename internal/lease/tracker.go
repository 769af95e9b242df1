// Package lease runs the broker-wide lease sweep: a single background
// task that periodically asks every registered subscription queue to
// expire its due leases. An ordered deadline structure would let the
// sweep sleep exactly until the next deadline; a fixed-interval ticker
// over all queues is simpler and sufficient until throughput demands
// more. Timer drift is tolerated: expiry is "no earlier than deadline,
// best-effort not much later."
package lease

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/riftbroker/rift/internal/domain"
	"github.com/riftbroker/rift/internal/logging"
	"github.com/riftbroker/rift/internal/subqueue"
)

// ExpireFunc is invoked once per subscription per sweep that produced at
// least one redelivery, after the queue's own state has already been
// updated. Callers use it to wake the subscriber stream and record
// metrics; it must not block.
type ExpireFunc func(topic, subscription string, expired []domain.Index)

// Tracker owns the set of live Subscription Queues and sweeps them for
// expired leases on a fixed interval.
type Tracker struct {
	mu       sync.Mutex
	queues   map[key]*subqueue.Queue
	interval time.Duration
	onExpire ExpireFunc

	cancel context.CancelFunc
	done   chan struct{}
}

type key struct {
	topic        string
	subscription string
}

// New returns a Tracker that sweeps every interval for due leases,
// invoking onExpire for each subscription that had a redelivery.
func New(interval time.Duration, onExpire ExpireFunc) *Tracker {
	return &Tracker{
		queues:   make(map[key]*subqueue.Queue),
		interval: interval,
		onExpire: onExpire,
	}
}

// Register adds q to the sweep set under (topic, subscription). Called
// when a subscription is created or a subscriber queue is otherwise
// brought into existence.
func (t *Tracker) Register(topic, subscription string, q *subqueue.Queue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queues[key{topic, subscription}] = q
}

// Unregister removes the queue for (topic, subscription) from the sweep
// set. Called on subscription deletion, where the caller also drops the
// queue's leases via Queue.Drain, and on topic cascade delete, where the
// queue is abandoned without draining.
func (t *Tracker) Unregister(topic, subscription string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.queues, key{topic, subscription})
}

// Start launches the sweep loop. It runs until ctx is cancelled or Stop
// is called.
func (t *Tracker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.run(ctx)
}

// Stop halts the sweep loop and waits for it to exit.
func (t *Tracker) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
}

func (t *Tracker) run(ctx context.Context) {
	defer close(t.done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	log := logging.Op()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			t.sweep(now, log)
		}
	}
}

func (t *Tracker) sweep(now time.Time, log *slog.Logger) {
	t.mu.Lock()
	snapshot := make(map[key]*subqueue.Queue, len(t.queues))
	for k, q := range t.queues {
		snapshot[k] = q
	}
	t.mu.Unlock()

	for k, q := range snapshot {
		expired := q.ExpireDue(now)
		if len(expired) == 0 {
			continue
		}
		log.Debug("lease sweep expired leases", "topic", k.topic, "subscription", k.subscription, "count", len(expired))
		if t.onExpire != nil {
			t.onExpire(k.topic, k.subscription, expired)
		}
	}
}
