package grpcserver

import (
	"github.com/riftbroker/rift/internal/domain"
	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toWireMessage(msg domain.Message) *riftv1.Message {
	return &riftv1.Message{
		Topic:      msg.Topic,
		Attributes: msg.Attributes,
		Published:  timestamppb.New(msg.Published),
		Data:       msg.Data,
	}
}

func fromWireMessage(m *riftv1.Message) domain.Message {
	return domain.Message{
		Topic:      m.GetTopic(),
		Attributes: m.GetAttributes(),
		Data:       m.GetData(),
	}
}

func toWireLease(l domain.Lease) *riftv1.Lease {
	return &riftv1.Lease{
		Topic:        l.Topic,
		Subscription: l.Subscription,
		Id:           uint64(l.ID),
		Index:        uint64(l.Index),
		TtlMs:        uint64(l.TTL.Milliseconds()),
		Leased:       timestamppb.New(l.Leased),
		Deadline:     timestamppb.New(l.Deadline),
	}
}

func toWireLeasedMessage(lm domain.LeasedMessage) *riftv1.LeasedMessage {
	return &riftv1.LeasedMessage{
		Lease:   toWireLease(lm.Lease),
		Message: toWireMessage(lm.Message),
	}
}

func toWireTopic(t domain.Topic) *riftv1.Topic {
	return &riftv1.Topic{
		Name:    t.Name,
		Created: timestamppb.New(t.Created),
		Updated: timestamppb.New(t.Updated),
	}
}

func toWireSubscription(s domain.Subscription) *riftv1.Subscription {
	return &riftv1.Subscription{
		Name:    s.Name,
		Topic:   s.Topic,
		Created: timestamppb.New(s.Created),
		Updated: timestamppb.New(s.Updated),
	}
}
