// Package registry implements the Topic Registry and Subscription
// Registry: name -> entity lookup tables with create/get/list/update/
// delete lifecycle operations and uniqueness enforcement. A subscription
// holds its topic by name, not by reference, and is re-resolved through
// this registry on every access — deletion races are handled by failing
// with domain.ErrTopicNotFound rather than by holding a pointer into a
// structure that might be torn down concurrently.
package registry

import (
	"sync"
	"time"

	"github.com/riftbroker/rift/internal/domain"
	"github.com/riftbroker/rift/internal/store"
	"github.com/riftbroker/rift/internal/subqueue"
)

// TopicEntry pairs a Topic with the Message Store it owns.
type TopicEntry struct {
	Topic domain.Topic
	Store *store.Store
}

// SubEntry pairs a Subscription with the Subscription Queue it owns.
type SubEntry struct {
	Subscription domain.Subscription
	Queue        *subqueue.Queue
}

type subKey struct {
	topic string
	name  string
}

// Registry holds both the Topic Registry and Subscription Registry.
// They are kept in one type because every subscription operation first
// validates the parent topic, and a single mutex over both tables is
// cheaper and no less correct than threading cross-registry calls
// through two separate locks.
type Registry struct {
	mu     sync.RWMutex
	topics map[string]*TopicEntry
	subs   map[subKey]*SubEntry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		topics: make(map[string]*TopicEntry),
		subs:   make(map[subKey]*SubEntry),
	}
}

// CreateTopic creates a new topic with its own Message Store. Returns
// domain.ErrTopicAlreadyExists if name is taken, domain.ErrInvalidArgument
// if name is empty.
func (r *Registry) CreateTopic(name string) (domain.Topic, error) {
	if name == "" {
		return domain.Topic{}, domain.ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.topics[name]; ok {
		return domain.Topic{}, domain.ErrTopicAlreadyExists
	}
	now := time.Now().UTC()
	topic := domain.Topic{Name: name, Created: now, Updated: now}
	r.topics[name] = &TopicEntry{Topic: topic, Store: store.New()}
	return topic, nil
}

// GetTopic returns the named topic, or domain.ErrTopicNotFound.
func (r *Registry) GetTopic(name string) (domain.Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.topics[name]
	if !ok {
		return domain.Topic{}, domain.ErrTopicNotFound
	}
	return entry.Topic, nil
}

// TopicStore returns the Message Store owned by the named topic, or
// domain.ErrTopicNotFound.
func (r *Registry) TopicStore(name string) (*store.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.topics[name]
	if !ok {
		return nil, domain.ErrTopicNotFound
	}
	return entry.Store, nil
}

// ListTopics returns every topic, in no particular order.
func (r *Registry) ListTopics() []domain.Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Topic, 0, len(r.topics))
	for _, entry := range r.topics {
		out = append(out, entry.Topic)
	}
	return out
}

// UpdateTopic refreshes the topic's Updated timestamp. The current wire
// schema carries no other mutable fields on Topic, and the name is both
// the lookup key and the identity, so a rename cannot be expressed; an
// unknown name returns domain.ErrTopicNotFound.
func (r *Registry) UpdateTopic(name string) (domain.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.topics[name]
	if !ok {
		return domain.Topic{}, domain.ErrTopicNotFound
	}
	entry.Topic.Updated = time.Now().UTC()
	return entry.Topic, nil
}

// DeleteTopic removes the named topic and every subscription attached to
// it, returning the deleted subscription names for the caller (the
// Broker Facade) to tear down their fan-out and lease-tracker state.
func (r *Registry) DeleteTopic(name string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.topics[name]; !ok {
		return nil, domain.ErrTopicNotFound
	}
	delete(r.topics, name)

	var removed []string
	for k := range r.subs {
		if k.topic == name {
			removed = append(removed, k.name)
			delete(r.subs, k)
		}
	}
	return removed, nil
}

// CreateSubscription creates a subscription on an existing topic with its
// own Subscription Queue. Returns domain.ErrTopicNotFound if the topic
// does not exist, domain.ErrSubscriptionAlreadyExists if (topic, name) is
// taken, domain.ErrInvalidArgument if name is empty.
func (r *Registry) CreateSubscription(topic, name string) (domain.Subscription, error) {
	if name == "" {
		return domain.Subscription{}, domain.ErrInvalidArgument
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.topics[topic]; !ok {
		return domain.Subscription{}, domain.ErrTopicNotFound
	}
	k := subKey{topic, name}
	if _, ok := r.subs[k]; ok {
		return domain.Subscription{}, domain.ErrSubscriptionAlreadyExists
	}
	now := time.Now().UTC()
	sub := domain.Subscription{Topic: topic, Name: name, Created: now, Updated: now}
	r.subs[k] = &SubEntry{Subscription: sub, Queue: subqueue.New(topic, name)}
	return sub, nil
}

// GetSubscription returns the named subscription, or
// domain.ErrSubscriptionNotFound.
func (r *Registry) GetSubscription(topic, name string) (domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.subs[subKey{topic, name}]
	if !ok {
		return domain.Subscription{}, domain.ErrSubscriptionNotFound
	}
	return entry.Subscription, nil
}

// SubscriptionQueue returns the Subscription Queue owned by (topic,
// name), or domain.ErrSubscriptionNotFound.
func (r *Registry) SubscriptionQueue(topic, name string) (*subqueue.Queue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.subs[subKey{topic, name}]
	if !ok {
		return nil, domain.ErrSubscriptionNotFound
	}
	return entry.Queue, nil
}

// ListSubscriptions returns every subscription attached to topic. An
// empty topic lists every subscription across all topics.
func (r *Registry) ListSubscriptions(topic string) []domain.Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Subscription, 0)
	for k, entry := range r.subs {
		if topic != "" && k.topic != topic {
			continue
		}
		out = append(out, entry.Subscription)
	}
	return out
}

// UpdateSubscription refreshes the subscription's Updated timestamp. As
// with UpdateTopic, (topic, name) is the identity, so no rename can be
// expressed; an unknown pair returns domain.ErrSubscriptionNotFound.
func (r *Registry) UpdateSubscription(topic, name string) (domain.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.subs[subKey{topic, name}]
	if !ok {
		return domain.Subscription{}, domain.ErrSubscriptionNotFound
	}
	entry.Subscription.Updated = time.Now().UTC()
	return entry.Subscription, nil
}

// DeleteSubscription removes (topic, name). Returns domain.ErrSubscriptionNotFound
// if it does not exist.
func (r *Registry) DeleteSubscription(topic, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := subKey{topic, name}
	if _, ok := r.subs[k]; !ok {
		return domain.ErrSubscriptionNotFound
	}
	delete(r.subs, k)
	return nil
}
