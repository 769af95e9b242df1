package grpcserver

import (
	"testing"
	"time"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/riftbroker/rift/internal/domain"
)

func TestWireMessageRoundTripPreservesPayload(t *testing.T) {
	msg := domain.Message{
		Topic:      "t",
		Attributes: map[string]string{"k": "v"},
		Published:  time.Now().UTC(),
		Data:       []byte("hello"),
	}
	wire := toWireMessage(msg)
	back := fromWireMessage(wire)

	if back.Topic != msg.Topic || string(back.Data) != string(msg.Data) {
		t.Fatalf("round trip mismatch: got %+v from %+v", back, msg)
	}
	if back.Attributes["k"] != "v" {
		t.Fatalf("expected attribute to survive round trip, got %+v", back.Attributes)
	}
}

func TestFromWireMessageNilAttributes(t *testing.T) {
	wire := &riftv1.Message{Topic: "t", Data: []byte("x")}
	back := fromWireMessage(wire)
	if back.Topic != "t" || string(back.Data) != "x" {
		t.Fatalf("unexpected conversion: %+v", back)
	}
}

func TestToWireLeaseCarriesAllFields(t *testing.T) {
	l := domain.Lease{
		Topic:        "t",
		Subscription: "s",
		ID:           7,
		Index:        42,
		TTL:          3 * time.Second,
		Leased:       time.Now().UTC(),
		Deadline:     time.Now().Add(3 * time.Second).UTC(),
	}
	wire := toWireLease(l)
	if wire.GetId() != 7 || wire.GetIndex() != 42 || wire.GetTtlMs() != 3000 {
		t.Fatalf("unexpected wire lease: %+v", wire)
	}
	if wire.GetTopic() != "t" || wire.GetSubscription() != "s" {
		t.Fatalf("unexpected wire lease identity: %+v", wire)
	}
	if !wire.GetLeased().AsTime().Equal(l.Leased) || !wire.GetDeadline().AsTime().Equal(l.Deadline) {
		t.Fatalf("unexpected wire lease timestamps: %+v", wire)
	}
}

func TestToWireTopicAndSubscription(t *testing.T) {
	now := time.Now().UTC()
	topic := domain.Topic{Name: "t", Created: now, Updated: now}
	wireTopic := toWireTopic(topic)
	if wireTopic.GetName() != "t" {
		t.Fatalf("unexpected wire topic: %+v", wireTopic)
	}

	sub := domain.Subscription{Topic: "t", Name: "s", Created: now, Updated: now}
	wireSub := toWireSubscription(sub)
	if wireSub.GetName() != "s" || wireSub.GetTopic() != "t" {
		t.Fatalf("unexpected wire subscription: %+v", wireSub)
	}
}
