package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riftbroker/rift/internal/domain"
	"github.com/riftbroker/rift/internal/queue"
)

func testBroker(t *testing.T, cfg Config) *Broker {
	t.Helper()
	if cfg.DefaultLeaseTTL == 0 {
		cfg.DefaultLeaseTTL = 200 * time.Millisecond
	}
	if cfg.LeaseSweepInterval == 0 {
		cfg.LeaseSweepInterval = 20 * time.Millisecond
	}
	b := New(cfg, queue.NewChannelNotifier())
	ctx, cancel := context.WithCancel(context.Background())
	b.Start(ctx)
	t.Cleanup(func() {
		cancel()
		b.Stop()
	})
	return b
}

// subscribeCollecting runs Subscribe in a goroutine, automatically acking or
// leaving leases pending according to autoAck, and streams received messages
// onto the returned channel. Cancel the returned context to end the stream.
func subscribeCollecting(t *testing.T, b *Broker, topic, name string, autoAck bool) (context.Context, context.CancelFunc, <-chan domain.LeasedMessage, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan domain.LeasedMessage, 16)
	done := make(chan error, 1)

	go func() {
		err := b.Subscribe(ctx, topic, name, func(lm domain.LeasedMessage) error {
			out <- lm
			if autoAck {
				if ackErr := b.Ack(topic, name, lm.Lease.ID); ackErr != nil {
					return ackErr
				}
			}
			return nil
		})
		done <- err
	}()

	return ctx, cancel, out, done
}

func recvMessage(t *testing.T, ch <-chan domain.LeasedMessage) domain.LeasedMessage {
	t.Helper()
	select {
	case lm := <-ch:
		return lm
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a delivered message")
		return domain.LeasedMessage{}
	}
}

func TestPublishAckScenario(t *testing.T) {
	b := testBroker(t, Config{})
	if _, err := b.CreateTopic("t"); err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if _, err := b.CreateSubscription("t", "s"); err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}

	_, cancel, out, _ := subscribeCollecting(t, b, "t", "s", true)
	defer cancel()

	// Let the stream activate before publishing.
	time.Sleep(10 * time.Millisecond)

	if _, err := b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("a")}); err != nil {
		t.Fatalf("Publish a: %v", err)
	}
	if _, err := b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("b")}); err != nil {
		t.Fatalf("Publish b: %v", err)
	}

	first := recvMessage(t, out)
	second := recvMessage(t, out)
	if string(first.Message.Data) != "a" || string(second.Message.Data) != "b" {
		t.Fatalf("expected a then b in order, got %q then %q", first.Message.Data, second.Message.Data)
	}
	if first.Lease.ID == second.Lease.ID {
		t.Fatal("expected distinct lease ids")
	}

	// No redelivery should arrive within 2x TTL since both were acked.
	select {
	case lm := <-out:
		t.Fatalf("unexpected redelivery: %v", lm)
	case <-time.After(2 * b.cfg.DefaultLeaseTTL):
	}
}

func TestNackScenario(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	_, cancel, out, _ := subscribeCollecting(t, b, "t", "s", false)
	defer cancel()
	time.Sleep(10 * time.Millisecond)

	b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("x")})
	first := recvMessage(t, out)
	if string(first.Message.Data) != "x" {
		t.Fatalf("expected x, got %q", first.Message.Data)
	}

	if err := b.Nack(context.Background(), "t", "s", first.Lease.ID); err != nil {
		t.Fatalf("Nack: %v", err)
	}

	second := recvMessage(t, out)
	if string(second.Message.Data) != "x" {
		t.Fatalf("expected redelivered x, got %q", second.Message.Data)
	}
	if second.Lease.ID == first.Lease.ID {
		t.Fatal("expected a new lease id on redelivery")
	}
	if err := b.Ack("t", "s", second.Lease.ID); err != nil {
		t.Fatalf("Ack: %v", err)
	}
}

func TestExpireScenario(t *testing.T) {
	b := testBroker(t, Config{DefaultLeaseTTL: 50 * time.Millisecond, LeaseSweepInterval: 10 * time.Millisecond})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	_, cancel, out, _ := subscribeCollecting(t, b, "t", "s", false)
	defer cancel()
	time.Sleep(10 * time.Millisecond)

	b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("y")})
	first := recvMessage(t, out)

	second := recvMessage(t, out)
	if string(second.Message.Data) != "y" {
		t.Fatalf("expected re-delivered y, got %q", second.Message.Data)
	}
	if second.Lease.ID == first.Lease.ID {
		t.Fatal("expected a new lease id after expiry")
	}
}

func TestFanoutScenario(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s1")
	b.CreateSubscription("t", "s2")

	_, cancel1, out1, _ := subscribeCollecting(t, b, "t", "s1", true)
	defer cancel1()
	_, cancel2, out2, _ := subscribeCollecting(t, b, "t", "s2", true)
	defer cancel2()
	time.Sleep(10 * time.Millisecond)

	b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("z")})

	m1 := recvMessage(t, out1)
	m2 := recvMessage(t, out2)
	if string(m1.Message.Data) != "z" || string(m2.Message.Data) != "z" {
		t.Fatalf("expected both subscribers to receive z, got %q and %q", m1.Message.Data, m2.Message.Data)
	}
	if m1.Lease.Subscription == m2.Lease.Subscription {
		t.Fatalf("expected independent leases per subscription, got %+v and %+v", m1.Lease, m2.Lease)
	}
}

func TestBacklogScenario(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("p1")})
	b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("p2")})
	b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("p3")})

	_, cancel, out, _ := subscribeCollecting(t, b, "t", "s", true)
	defer cancel()

	want := []string{"p1", "p2", "p3"}
	for _, w := range want {
		got := recvMessage(t, out)
		if string(got.Message.Data) != w {
			t.Fatalf("expected backlog order %v, got %q at this step", want, got.Message.Data)
		}
	}
}

func TestSingleSubscriberScenario(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	_, cancel1, _, done1 := subscribeCollecting(t, b, "t", "s", true)

	// Give the first stream a moment to become active.
	time.Sleep(10 * time.Millisecond)

	err := b.Subscribe(context.Background(), "t", "s", func(domain.LeasedMessage) error { return nil })
	if !errors.Is(err, domain.ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}

	cancel1()
	select {
	case <-done1:
	case <-time.After(time.Second):
		t.Fatal("expected first stream to exit after cancellation")
	}

	// Retry after the first stream cancels: should now succeed, so run it
	// briefly and cancel again.
	retryCtx, retryCancel := context.WithCancel(context.Background())
	retryDone := make(chan error, 1)
	go func() {
		retryDone <- b.Subscribe(retryCtx, "t", "s", func(domain.LeasedMessage) error { return nil })
	}()
	time.Sleep(10 * time.Millisecond)
	retryCancel()
	select {
	case err := <-retryDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("expected retry to succeed until cancellation, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected retried subscribe to run and then exit on cancellation")
	}
}

func TestDeleteTopicCascadesFanoutAndLeaseTracking(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	_, cancel, _, done := subscribeCollecting(t, b, "t", "s", true)
	defer cancel()
	time.Sleep(10 * time.Millisecond)

	if err := b.DeleteTopic("t"); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected the active stream to end with an error after topic deletion")
		}
	case <-time.After(time.Second):
		t.Fatal("expected DeleteTopic to cancel the active stream")
	}

	if _, err := b.GetTopic("t"); !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatal("expected topic to be gone")
	}
}

func TestPublishUnknownTopic(t *testing.T) {
	b := testBroker(t, Config{})
	if _, err := b.Publish(context.Background(), domain.Message{Topic: "missing", Data: []byte("x")}); !errors.Is(err, domain.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestAckUnknownLease(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")
	if err := b.Ack("t", "s", 999); !errors.Is(err, domain.ErrUnknownLease) {
		t.Fatalf("expected ErrUnknownLease, got %v", err)
	}
}

func TestDeleteSubscriptionRetiresHeldIndices(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	if _, err := b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("x")}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	topicStore, err := b.reg.TopicStore("t")
	if err != nil {
		t.Fatalf("TopicStore: %v", err)
	}
	if got := topicStore.Len(); got != 1 {
		t.Fatalf("expected 1 live message before the subscription is deleted, got %d", got)
	}

	if err := b.DeleteSubscription("t", "s"); err != nil {
		t.Fatalf("DeleteSubscription: %v", err)
	}

	if got := topicStore.Len(); got != 0 {
		t.Fatalf("expected DeleteSubscription to retire the index its queue still held, got %d live messages", got)
	}
}

func TestPublishRetiresIndexForSubscriptionVanishedDuringFanout(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	// Drop the subscription from the registry directly, without going
	// through Broker.DeleteSubscription, so fan-out's snapshot still
	// lists "s" as attached the way it would mid-race: Publish sees "s"
	// in SubscriptionsOf but its queue lookup then fails.
	if err := b.reg.DeleteSubscription("t", "s"); err != nil {
		t.Fatalf("DeleteSubscription: %v", err)
	}

	if _, err := b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("x")}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	topicStore, err := b.reg.TopicStore("t")
	if err != nil {
		t.Fatalf("TopicStore: %v", err)
	}
	if got := topicStore.Len(); got != 0 {
		t.Fatalf("expected Publish to retire the index for the vanished subscription's share, got %d live messages", got)
	}
}

func TestSubscribeDoesNotLoseWakeupOnImmediateConcurrentPublish(t *testing.T) {
	b := testBroker(t, Config{})
	b.CreateTopic("t")
	b.CreateSubscription("t", "s")

	_, cancel, out, done := subscribeCollecting(t, b, "t", "s", true)
	defer cancel()

	// No settling sleep before publishing: the delivery loop's wake
	// channel must already be registered by the time it first finds
	// nothing to pull, or this publish's wake signal has nowhere to land
	// and the message isn't picked up until some unrelated later event.
	const n = 50
	for i := 0; i < n; i++ {
		if _, err := b.Publish(context.Background(), domain.Message{Topic: "t", Data: []byte("x")}); err != nil {
			t.Fatalf("Publish: %v", err)
		}
	}

	for i := 0; i < n; i++ {
		recvMessage(t, out)
	}

	select {
	case err := <-done:
		t.Fatalf("subscribe loop ended unexpectedly: %v", err)
	default:
	}
}
