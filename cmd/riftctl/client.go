package main

import (
	"fmt"

	riftv1 "github.com/riftbroker/rift/api/rift/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// dial connects to riftd with plain (non-TLS) transport credentials.
// TLS configuration is not yet exposed on this client.
func dial() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(brokerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", brokerAddr, err)
	}
	return conn, nil
}

func topicClient(conn *grpc.ClientConn) riftv1.TopicServiceClient {
	return riftv1.NewTopicServiceClient(conn)
}

func subscriptionClient(conn *grpc.ClientConn) riftv1.SubscriptionServiceClient {
	return riftv1.NewSubscriptionServiceClient(conn)
}

func pubSubClient(conn *grpc.ClientConn) riftv1.PubSubServiceClient {
	return riftv1.NewPubSubServiceClient(conn)
}
