// Package grpcserver wires the broker to the three riftv1 gRPC services,
// plus health checking and reflection on the same listener: one
// grpc.Server, one interceptor chain, one listener, started and stopped
// as a unit.
package grpcserver

import (
	"fmt"
	"net"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"github.com/riftbroker/rift/internal/broker"
	"github.com/riftbroker/rift/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server is the unified broker gRPC server: PubSubService, TopicService,
// and SubscriptionService registered on one grpc.Server, alongside health
// checking and reflection.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	health     *health.Server
}

// New builds a Server backed by b. Call Serve to start accepting
// connections.
func New(b *broker.Broker) *Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(tracingUnaryInterceptor, loggingUnaryInterceptor),
		grpc.ChainStreamInterceptor(tracingStreamInterceptor, loggingStreamInterceptor),
	)

	riftv1.RegisterPubSubServiceServer(grpcServer, NewPubSubServer(b))
	riftv1.RegisterTopicServiceServer(grpcServer, NewTopicServer(b))
	riftv1.RegisterSubscriptionServiceServer(grpcServer, NewSubscriptionServer(b))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	return &Server{grpcServer: grpcServer, health: healthServer}
}

// Serve starts accepting connections on addr. It blocks; run it in its
// own goroutine.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.listener = lis

	logging.Op().Info("broker gRPC server starting", "address", addr)
	return s.grpcServer.Serve(lis)
}

// Stop gracefully drains in-flight RPCs (including Subscribe streams) and
// stops accepting new ones.
func (s *Server) Stop() {
	logging.Op().Info("stopping broker gRPC server")
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	s.grpcServer.GracefulStop()
}
