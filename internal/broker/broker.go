// Package broker implements the Broker Facade: the public operations
// surface (Publish, Subscribe, Ack, Nack, plus topic/subscription CRUD)
// that translates external requests into Registry, Message Store, and
// Subscription Queue operations. It is the only package that knows how
// all the other broker components fit together; internal/grpcserver
// calls it and nothing else.
package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/riftbroker/rift/internal/domain"
	"github.com/riftbroker/rift/internal/fanout"
	"github.com/riftbroker/rift/internal/lease"
	"github.com/riftbroker/rift/internal/logging"
	"github.com/riftbroker/rift/internal/metrics"
	"github.com/riftbroker/rift/internal/queue"
	"github.com/riftbroker/rift/internal/registry"
	"github.com/riftbroker/rift/internal/tracing"
)

// Config holds the broker-tunable knobs. It mirrors config.BrokerConfig
// but lives here too to avoid internal/broker depending on internal/config
// for a handful of scalars.
type Config struct {
	DefaultLeaseTTL         time.Duration
	LeaseSweepInterval      time.Duration
	MaxDeliveryBufferPerSub int
}

// Broker is the Broker Facade.
type Broker struct {
	reg     *registry.Registry
	fan     *fanout.Registry
	tracker *lease.Tracker
	cfg     Config
}

// New wires a fresh Broker: an empty Topic/Subscription Registry, a
// Fan-out Registry driven by notifier, and a Lease Tracker sweeping every
// cfg.LeaseSweepInterval. Call Start to launch the sweep loop.
func New(cfg Config, notifier queue.Notifier) *Broker {
	b := &Broker{
		reg: registry.New(),
		cfg: cfg,
	}
	b.fan = fanout.New(notifier)
	b.tracker = lease.New(cfg.LeaseSweepInterval, b.onExpire)
	return b
}

// Start launches the Lease Tracker's background sweep.
func (b *Broker) Start(ctx context.Context) {
	b.tracker.Start(ctx)
}

// Stop halts the Lease Tracker's background sweep.
func (b *Broker) Stop() {
	b.tracker.Stop()
}

func (b *Broker) onExpire(topic, subscription string, expired []domain.Index) {
	for _, idx := range expired {
		_, span := tracing.StartSpan(context.Background(), "broker.leaseExpire",
			tracing.AttrTopic.String(topic),
			tracing.AttrSubscription.String(subscription),
			tracing.AttrIndex.Int64(int64(idx)),
			tracing.AttrRedelivery.Bool(true),
		)
		metrics.RecordRedelivery(topic, subscription, string(domain.RedeliveryReasonExpire))
		tracing.SetSpanOK(span)
		span.End()
	}
	b.fan.Wake(context.Background(), topic, subscription)
	b.refreshGauges(topic, subscription)
}

func (b *Broker) refreshGauges(topic, subscription string) {
	q, err := b.reg.SubscriptionQueue(topic, subscription)
	if err != nil {
		return
	}
	depth := q.PendingDepth()
	metrics.SetPendingDepth(topic, subscription, depth)
	metrics.SetLeasesInFlight(topic, subscription, q.InFlightCount())

	if b.cfg.MaxDeliveryBufferPerSub > 0 && depth > b.cfg.MaxDeliveryBufferPerSub {
		logging.Op().Warn("subscription backlog exceeds configured threshold",
			"topic", topic, "subscription", subscription,
			"pending_depth", depth, "threshold", b.cfg.MaxDeliveryBufferPerSub)
	}
}

// --- Topic CRUD ---

// CreateTopic creates a topic with an empty Message Store.
func (b *Broker) CreateTopic(name string) (domain.Topic, error) {
	topic, err := b.reg.CreateTopic(name)
	if err != nil {
		return domain.Topic{}, err
	}
	logging.Op().Info("topic created", "topic", name)
	return topic, nil
}

// GetTopic returns the named topic.
func (b *Broker) GetTopic(name string) (domain.Topic, error) {
	return b.reg.GetTopic(name)
}

// ListTopics returns every topic.
func (b *Broker) ListTopics() []domain.Topic {
	return b.reg.ListTopics()
}

// UpdateTopic refreshes the topic's Updated timestamp.
func (b *Broker) UpdateTopic(name string) (domain.Topic, error) {
	return b.reg.UpdateTopic(name)
}

// DeleteTopic deletes a topic and cascades: every attached subscription is
// detached from fan-out, unregistered from the Lease Tracker, and removed
// from the Subscription Registry. In-flight leases held by a cascaded
// subscription are abandoned, not drained.
func (b *Broker) DeleteTopic(name string) error {
	removedSubs, err := b.reg.DeleteTopic(name)
	if err != nil {
		return err
	}
	for _, subName := range removedSubs {
		b.fan.Detach(name, subName)
		b.tracker.Unregister(name, subName)
	}
	logging.Op().Info("topic deleted", "topic", name, "cascaded_subscriptions", len(removedSubs))
	return nil
}

// --- Subscription CRUD ---

// CreateSubscription creates a subscription on an existing topic, attaches
// it to the Fan-out Registry, and registers its queue with the Lease
// Tracker.
func (b *Broker) CreateSubscription(topic, name string) (domain.Subscription, error) {
	sub, err := b.reg.CreateSubscription(topic, name)
	if err != nil {
		return domain.Subscription{}, err
	}
	q, err := b.reg.SubscriptionQueue(topic, name)
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("%w: subscription queue vanished after create", domain.ErrInternal)
	}
	b.fan.Attach(topic, name)
	b.tracker.Register(topic, name, q)
	logging.Op().Info("subscription created", "topic", topic, "subscription", name)
	return sub, nil
}

// GetSubscription returns the named subscription.
func (b *Broker) GetSubscription(topic, name string) (domain.Subscription, error) {
	return b.reg.GetSubscription(topic, name)
}

// ListSubscriptions returns every subscription attached to topic, or every
// subscription if topic is empty.
func (b *Broker) ListSubscriptions(topic string) []domain.Subscription {
	return b.reg.ListSubscriptions(topic)
}

// UpdateSubscription refreshes the subscription's Updated timestamp.
func (b *Broker) UpdateSubscription(topic, name string) (domain.Subscription, error) {
	return b.reg.UpdateSubscription(topic, name)
}

// DeleteSubscription removes a subscription, cancelling its active stream
// (if any) and dropping its Subscription Queue. Every index the queue
// still held (pending, redelivery, or in-flight) is retired from the
// topic's Message Store, releasing the refcount Publish seeded for this
// subscription — otherwise those entries would never be freed for as
// long as the topic exists.
func (b *Broker) DeleteSubscription(topic, name string) error {
	q, err := b.reg.SubscriptionQueue(topic, name)
	if err != nil {
		return err
	}
	if err := b.reg.DeleteSubscription(topic, name); err != nil {
		return err
	}
	b.fan.Detach(topic, name)
	b.tracker.Unregister(topic, name)

	drained := q.Drain()
	if topicStore, err := b.reg.TopicStore(topic); err == nil {
		for _, idx := range drained {
			topicStore.Retire(idx)
		}
	}
	logging.Op().Info("subscription deleted", "topic", topic, "subscription", name, "retired", len(drained))
	return nil
}

// --- Pub/Sub ---

// Publish appends msg to its topic's Message Store and fans the
// resulting index out to every attached subscription's queue, waking any
// active delivery loop. It never suspends on subscriber back-pressure.
func (b *Broker) Publish(ctx context.Context, msg domain.Message) (domain.Index, error) {
	if msg.Topic == "" {
		return 0, domain.ErrInvalidArgument
	}
	ctx, span := tracing.StartSpan(ctx, "broker.Publish", tracing.AttrTopic.String(msg.Topic))
	defer span.End()

	start := time.Now()
	topicStore, err := b.reg.TopicStore(msg.Topic)
	if err != nil {
		tracing.SetSpanError(span, err)
		return 0, err
	}

	subs := b.fan.SubscriptionsOf(msg.Topic)
	idx := topicStore.Append(msg, len(subs))
	span.SetAttributes(tracing.AttrIndex.Int64(int64(idx)))

	for _, subName := range subs {
		q, err := b.reg.SubscriptionQueue(msg.Topic, subName)
		if err != nil {
			// Detached between the snapshot and here: Append already
			// counted this subscription in idx's refcount, and nothing
			// will ever call Ack for it now that its queue is gone, so
			// release that share immediately or the entry leaks for as
			// long as the topic exists.
			topicStore.Retire(idx)
			continue
		}
		q.EnqueueNew(idx)
		b.fan.Wake(ctx, msg.Topic, subName)
		b.refreshGauges(msg.Topic, subName)
	}

	metrics.RecordPublish(msg.Topic, time.Since(start).Seconds())
	tracing.SetSpanOK(span)
	return idx, nil
}

// Emit is the callback a delivery loop invokes for each leased message it
// hands to the transport. Returning a non-nil error (e.g. a stream send
// failure) ends Subscribe; the lease it most recently issued remains
// in-flight and will expire normally.
type Emit func(domain.LeasedMessage) error

// Subscribe installs ctx's caller as the at-most-one active delivery
// stream for (topic, name) and runs the delivery loop until emit returns
// an error, the subscription is deleted, or ctx is cancelled.
//
// Back-pressure: the loop does not pull the next index until emit for the
// current one returns, so a slow subscriber accumulates indices in its
// Subscription Queue rather than in duplicated in-memory payloads.
func (b *Broker) Subscribe(ctx context.Context, topic, name string, emit Emit) error {
	if _, err := b.reg.GetSubscription(topic, name); err != nil {
		return err
	}
	topicStore, err := b.reg.TopicStore(topic)
	if err != nil {
		return err
	}
	q, err := b.reg.SubscriptionQueue(topic, name)
	if err != nil {
		return err
	}

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !b.fan.TryActivate(topic, name, cancel) {
		return domain.ErrAlreadySubscribed
	}
	defer func() {
		b.fan.Release(topic, name)
		metrics.SetActiveSubscribers(topic, b.fan.ActiveCount(topic))
	}()
	metrics.SetActiveSubscribers(topic, b.fan.ActiveCount(topic))

	for {
		// Register the wake channel before checking Pull, not after: if the
		// check came first, a Publish/Nack/expiry that enqueues and wakes in
		// the gap between a failed Pull and this Subscribe would find no
		// listener yet and drop the signal, stalling the loop until some
		// unrelated later event woke it. Subscribing first closes that gap;
		// the per-iteration context is cancelled as soon as Pull has either
		// found work or consumed the wake, so listeners don't pile up on a
		// long-lived stream.
		waitCtx, cancelWait := context.WithCancel(streamCtx)
		waitCh := b.fan.WaitForWork(waitCtx, topic, name)

		idx, ok := q.Pull()
		if !ok {
			select {
			case <-streamCtx.Done():
				cancelWait()
				return streamCtx.Err()
			case <-waitCh:
				cancelWait()
				continue
			}
		}
		cancelWait()

		msg, ok := topicStore.Get(idx)
		if !ok {
			// Retired (e.g. every other subscription already acked and
			// this one's entry raced past retirement) before this
			// subscription got to it — nothing to deliver, move on.
			continue
		}

		ttl := b.cfg.DefaultLeaseTTL
		lse := q.BeginLease(idx, ttl)
		metrics.RecordDelivery(topic, name)
		b.refreshGauges(topic, name)

		_, deliverySpan := tracing.StartSpan(streamCtx, "broker.deliver",
			tracing.AttrTopic.String(topic),
			tracing.AttrSubscription.String(name),
			tracing.AttrLeaseID.Int64(int64(lse.ID)),
			tracing.AttrIndex.Int64(int64(idx)),
		)
		err := emit(domain.LeasedMessage{Lease: lse, Message: msg})
		if err != nil {
			tracing.SetSpanError(deliverySpan, err)
		} else {
			tracing.SetSpanOK(deliverySpan)
		}
		deliverySpan.End()
		if err != nil {
			return err
		}
	}
}

// Ack resolves a lease positively: it is removed from in_flight and its
// index is retired from the owning topic's Message Store.
func (b *Broker) Ack(topic, name string, id domain.LeaseID) error {
	_, span := tracing.StartSpan(context.Background(), "broker.Ack",
		tracing.AttrTopic.String(topic),
		tracing.AttrSubscription.String(name),
		tracing.AttrLeaseID.Int64(int64(id)),
	)
	defer span.End()

	q, err := b.reg.SubscriptionQueue(topic, name)
	if err != nil {
		tracing.SetSpanError(span, err)
		return err
	}
	idx, ok := q.Ack(id)
	if !ok {
		tracing.SetSpanError(span, domain.ErrUnknownLease)
		return domain.ErrUnknownLease
	}
	if topicStore, err := b.reg.TopicStore(topic); err == nil {
		topicStore.Retire(idx)
	}
	metrics.RecordAck(topic, name)
	b.refreshGauges(topic, name)
	tracing.SetSpanOK(span)
	return nil
}

// Nack resolves a lease negatively: it is removed from in_flight and its
// index is pushed onto the head of the subscriber's delivery order via
// redelivery, waking any active stream.
func (b *Broker) Nack(ctx context.Context, topic, name string, id domain.LeaseID) error {
	ctx, span := tracing.StartSpan(ctx, "broker.Nack",
		tracing.AttrTopic.String(topic),
		tracing.AttrSubscription.String(name),
		tracing.AttrLeaseID.Int64(int64(id)),
		tracing.AttrRedelivery.Bool(true),
	)
	defer span.End()

	q, err := b.reg.SubscriptionQueue(topic, name)
	if err != nil {
		tracing.SetSpanError(span, err)
		return err
	}
	if _, ok := q.Nack(id); !ok {
		tracing.SetSpanError(span, domain.ErrUnknownLease)
		return domain.ErrUnknownLease
	}
	metrics.RecordRedelivery(topic, name, string(domain.RedeliveryReasonNack))
	b.fan.Wake(ctx, topic, name)
	b.refreshGauges(topic, name)
	tracing.SetSpanOK(span)
	return nil
}
