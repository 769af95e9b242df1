package grpcserver

import (
	"context"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/riftbroker/rift/internal/broker"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// SubscriptionServer adapts internal/broker to riftv1.SubscriptionServiceServer.
type SubscriptionServer struct {
	riftv1.UnimplementedSubscriptionServiceServer
	broker *broker.Broker
}

// NewSubscriptionServer returns a SubscriptionServer backed by b.
func NewSubscriptionServer(b *broker.Broker) *SubscriptionServer {
	return &SubscriptionServer{broker: b}
}

func (s *SubscriptionServer) Create(ctx context.Context, req *riftv1.CreateSubscriptionRequest) (*riftv1.Subscription, error) {
	if req.GetTopic() == "" || req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic and name are required")
	}
	sub, err := s.broker.CreateSubscription(req.GetTopic(), req.GetName())
	if err != nil {
		return nil, mapError(err)
	}
	return toWireSubscription(sub), nil
}

func (s *SubscriptionServer) Get(ctx context.Context, req *riftv1.GetSubscriptionRequest) (*riftv1.Subscription, error) {
	sub, err := s.broker.GetSubscription(req.GetTopic(), req.GetName())
	if err != nil {
		return nil, mapError(err)
	}
	return toWireSubscription(sub), nil
}

func (s *SubscriptionServer) List(req *riftv1.ListSubscriptionsRequest, stream riftv1.SubscriptionService_ListServer) error {
	for _, sub := range s.broker.ListSubscriptions(req.GetTopic()) {
		if err := stream.Send(toWireSubscription(sub)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SubscriptionServer) Update(ctx context.Context, req *riftv1.UpdateSubscriptionRequest) (*riftv1.Subscription, error) {
	sub, err := s.broker.UpdateSubscription(req.GetTopic(), req.GetName())
	if err != nil {
		return nil, mapError(err)
	}
	return toWireSubscription(sub), nil
}

func (s *SubscriptionServer) Delete(ctx context.Context, req *riftv1.DeleteSubscriptionRequest) (*emptypb.Empty, error) {
	if err := s.broker.DeleteSubscription(req.GetTopic(), req.GetName()); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}
