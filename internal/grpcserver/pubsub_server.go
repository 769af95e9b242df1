package grpcserver

import (
	"context"
	"errors"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/riftbroker/rift/internal/broker"
	"github.com/riftbroker/rift/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PubSubServer adapts internal/broker to riftv1.PubSubServiceServer.
type PubSubServer struct {
	riftv1.UnimplementedPubSubServiceServer
	broker *broker.Broker
}

// NewPubSubServer returns a PubSubServer backed by b.
func NewPubSubServer(b *broker.Broker) *PubSubServer {
	return &PubSubServer{broker: b}
}

func (s *PubSubServer) Publish(ctx context.Context, msg *riftv1.Message) (*riftv1.Confirmation, error) {
	if msg.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic is required")
	}
	if _, err := s.broker.Publish(ctx, fromWireMessage(msg)); err != nil {
		return nil, mapError(err)
	}
	return &riftv1.Confirmation{Status: riftv1.Status_STATUS_COMMITTED}, nil
}

func (s *PubSubServer) Ack(ctx context.Context, l *riftv1.Lease) (*riftv1.Confirmation, error) {
	if l.GetTopic() == "" || l.GetSubscription() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic and subscription are required")
	}
	if err := s.broker.Ack(l.GetTopic(), l.GetSubscription(), domain.LeaseID(l.GetId())); err != nil {
		return nil, mapError(err)
	}
	return &riftv1.Confirmation{Status: riftv1.Status_STATUS_COMMITTED}, nil
}

func (s *PubSubServer) Nack(ctx context.Context, l *riftv1.Lease) (*riftv1.Confirmation, error) {
	if l.GetTopic() == "" || l.GetSubscription() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic and subscription are required")
	}
	if err := s.broker.Nack(ctx, l.GetTopic(), l.GetSubscription(), domain.LeaseID(l.GetId())); err != nil {
		return nil, mapError(err)
	}
	return &riftv1.Confirmation{Status: riftv1.Status_STATUS_COMMITTED}, nil
}

func (s *PubSubServer) Subscribe(req *riftv1.SubscribeRequest, stream riftv1.PubSubService_SubscribeServer) error {
	if req.GetTopic() == "" || req.GetSubscription() == "" {
		return status.Error(codes.InvalidArgument, "topic and subscription are required")
	}

	err := s.broker.Subscribe(stream.Context(), req.GetTopic(), req.GetSubscription(), func(lm domain.LeasedMessage) error {
		return stream.Send(toWireLeasedMessage(lm))
	})
	if err == nil || errors.Is(err, context.Canceled) {
		// Client disconnect unwinds the delivery loop; not a server error.
		return nil
	}
	return mapError(err)
}
