package grpcserver

import (
	"context"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/riftbroker/rift/internal/broker"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// TopicServer adapts internal/broker to riftv1.TopicServiceServer.
type TopicServer struct {
	riftv1.UnimplementedTopicServiceServer
	broker *broker.Broker
}

// NewTopicServer returns a TopicServer backed by b.
func NewTopicServer(b *broker.Broker) *TopicServer {
	return &TopicServer{broker: b}
}

func (s *TopicServer) Create(ctx context.Context, req *riftv1.CreateTopicRequest) (*riftv1.Topic, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	topic, err := s.broker.CreateTopic(req.GetName())
	if err != nil {
		return nil, mapError(err)
	}
	return toWireTopic(topic), nil
}

func (s *TopicServer) Get(ctx context.Context, req *riftv1.GetTopicRequest) (*riftv1.Topic, error) {
	topic, err := s.broker.GetTopic(req.GetName())
	if err != nil {
		return nil, mapError(err)
	}
	return toWireTopic(topic), nil
}

func (s *TopicServer) List(req *riftv1.ListTopicsRequest, stream riftv1.TopicService_ListServer) error {
	for _, topic := range s.broker.ListTopics() {
		if err := stream.Send(toWireTopic(topic)); err != nil {
			return err
		}
	}
	return nil
}

func (s *TopicServer) Update(ctx context.Context, req *riftv1.UpdateTopicRequest) (*riftv1.Topic, error) {
	topic, err := s.broker.UpdateTopic(req.GetName())
	if err != nil {
		return nil, mapError(err)
	}
	return toWireTopic(topic), nil
}

func (s *TopicServer) Delete(ctx context.Context, req *riftv1.DeleteTopicRequest) (*emptypb.Empty, error) {
	if err := s.broker.DeleteTopic(req.GetName()); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}
