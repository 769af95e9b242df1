// Package domain holds the types and sentinel errors shared by every
// broker component: Message Store, Subscription Queue, Lease Tracker,
// Fan-out Registry, the Topic/Subscription registries, and the Broker
// Facade. None of these types know how to serve gRPC; internal/grpcserver
// translates to and from riftv1 at the edge.
package domain

import (
	"errors"
	"time"
)

// Message is an immutable payload published to a topic. Published is
// stamped by the Message Store at append time; a client-supplied value is
// discarded.
type Message struct {
	Topic      string
	Attributes map[string]string
	Published  time.Time
	Data       []byte
}

// Index is the monotonic, per-topic serial number assigned to a published
// message. Never reused within the topic's lifetime.
type Index uint64

// StoredMessage pairs a Message with the Index it was assigned.
type StoredMessage struct {
	Index   Index
	Message Message
}

// LeaseID is a monotonic, per-subscription identifier for an outstanding
// claim on a message.
type LeaseID uint64

// Lease is a time-bounded, single-use claim on a message index by a
// subscriber stream.
type Lease struct {
	Topic        string
	Subscription string
	ID           LeaseID
	Index        Index
	TTL          time.Duration
	Leased       time.Time
	Deadline     time.Time
}

// LeasedMessage is what a delivery loop emits to a subscriber stream: a
// lease paired with the message it claims.
type LeasedMessage struct {
	Lease   Lease
	Message Message
}

// Topic is a named channel; the unit of message publication.
type Topic struct {
	Name    string
	Created time.Time
	Updated time.Time
}

// Subscription is a named durable consumer attached to a topic; the unit
// of message delivery state. Topic is held by name, not by reference —
// every operation re-resolves it through the registry, so cascade delete
// never has to chase a pointer.
type Subscription struct {
	Topic   string
	Name    string
	Created time.Time
	Updated time.Time
}

// RedeliveryReason labels why an index re-entered the redelivery queue,
// for metrics and logging only — it has no bearing on delivery semantics.
type RedeliveryReason string

const (
	RedeliveryReasonNack   RedeliveryReason = "nack"
	RedeliveryReasonExpire RedeliveryReason = "expire"
)

// Sentinel errors surfaced to callers. internal/grpcserver maps each to a
// gRPC status code; callers inside the broker compare with errors.Is.
var (
	ErrTopicNotFound             = errors.New("rift: topic not found")
	ErrTopicAlreadyExists        = errors.New("rift: topic already exists")
	ErrSubscriptionNotFound      = errors.New("rift: subscription not found")
	ErrSubscriptionAlreadyExists = errors.New("rift: subscription already exists")
	ErrAlreadySubscribed         = errors.New("rift: subscription already has an active stream")
	ErrUnknownLease              = errors.New("rift: lease not found or already resolved")
	ErrInvalidArgument           = errors.New("rift: invalid argument")
	ErrInternal                  = errors.New("rift: internal error")
)
