// Package fanout implements the Fan-out Registry: for each topic, the set
// of attached subscriptions; for each subscription, the at-most-one
// active delivery stream. It also owns the wake-signal plumbing a
// delivery loop blocks on between pulls, built on internal/queue's
// push-based Notifier instead of a busy-poll loop.
package fanout

import (
	"context"
	"fmt"
	"sync"

	"github.com/riftbroker/rift/internal/queue"
)

type key struct {
	topic string
	name  string
}

func wakeKey(topic, name string) queue.QueueType {
	return queue.QueueType(fmt.Sprintf("%s/%s", topic, name))
}

// Registry is the Fan-out Registry. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	topicSubs  map[string]map[string]struct{} // topic -> subscription names
	activeSubs map[key]context.CancelFunc     // subscriptions with a live stream, and how to cancel it

	notifier queue.Notifier
}

// New returns an empty Registry that wakes delivery loops through notifier.
func New(notifier queue.Notifier) *Registry {
	return &Registry{
		topicSubs:  make(map[string]map[string]struct{}),
		activeSubs: make(map[key]context.CancelFunc),
		notifier:   notifier,
	}
}

// Attach adds subscription name to topic's fan-out set. Called when a
// subscription is created.
func (r *Registry) Attach(topic, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, ok := r.topicSubs[topic]
	if !ok {
		subs = make(map[string]struct{})
		r.topicSubs[topic] = subs
	}
	subs[name] = struct{}{}
}

// Detach removes subscription name from topic's fan-out set and cancels
// its active stream, if any. Called on subscription deletion.
func (r *Registry) Detach(topic, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.topicSubs[topic], name)
	k := key{topic, name}
	if cancel, ok := r.activeSubs[k]; ok {
		cancel()
		delete(r.activeSubs, k)
	}
}

// DetachTopic removes every subscription attached to topic, cancels any
// of their active streams, and returns their names, for cascade delete.
func (r *Registry) DetachTopic(topic string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := r.topicSubs[topic]
	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
		k := key{topic, name}
		if cancel, ok := r.activeSubs[k]; ok {
			cancel()
			delete(r.activeSubs, k)
		}
	}
	delete(r.topicSubs, topic)
	return names
}

// SubscriptionsOf returns a snapshot of the subscription names attached to
// topic, for Publish fan-out.
func (r *Registry) SubscriptionsOf(topic string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subs := r.topicSubs[topic]
	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	return names
}

// TryActivate installs this call as the subscription's active delivery
// stream, recording cancel so a future cascade delete or explicit
// subscription deletion can tear the stream down. It returns false if
// another stream is already active: a subscription allows at most one
// live subscriber at a time.
func (r *Registry) TryActivate(topic, name string, cancel context.CancelFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{topic, name}
	if _, busy := r.activeSubs[k]; busy {
		return false
	}
	r.activeSubs[k] = cancel
	return true
}

// Release frees the active-stream slot for (topic, name). Called when a
// delivery loop exits, by cancellation or error.
func (r *Registry) Release(topic, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.activeSubs, key{topic, name})
}

// ActiveCount reports how many subscriptions of topic currently have a
// live stream, for the active-subscribers gauge.
func (r *Registry) ActiveCount(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for k := range r.activeSubs {
		if k.topic == topic {
			n++
		}
	}
	return n
}

// Wake signals the delivery loop for (topic, name) that new work may be
// available. Safe to call whether or not a stream is currently
// subscribed; a signal with no subscriber is simply dropped.
func (r *Registry) Wake(ctx context.Context, topic, name string) {
	_ = r.notifier.Notify(ctx, wakeKey(topic, name))
}

// WaitForWork returns a channel that receives a signal whenever Wake is
// called for (topic, name). The channel closes when ctx is cancelled.
func (r *Registry) WaitForWork(ctx context.Context, topic, name string) <-chan struct{} {
	return r.notifier.Subscribe(ctx, wakeKey(topic, name))
}
