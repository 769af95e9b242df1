package grpcserver

import (
	"errors"
	"testing"

	"github.com/riftbroker/rift/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeForMapsDomainSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{domain.ErrTopicNotFound, codes.NotFound},
		{domain.ErrSubscriptionNotFound, codes.NotFound},
		{domain.ErrTopicAlreadyExists, codes.AlreadyExists},
		{domain.ErrSubscriptionAlreadyExists, codes.AlreadyExists},
		{domain.ErrAlreadySubscribed, codes.FailedPrecondition},
		{domain.ErrUnknownLease, codes.FailedPrecondition},
		{domain.ErrInvalidArgument, codes.InvalidArgument},
		{domain.ErrInternal, codes.Internal},
		{errors.New("unrecognized"), codes.Internal},
	}
	for _, tc := range cases {
		if got := codeFor(tc.err); got != tc.want {
			t.Errorf("codeFor(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestMapErrorNilIsNil(t *testing.T) {
	if err := mapError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMapErrorWrapsWithStatus(t *testing.T) {
	err := mapError(domain.ErrTopicNotFound)
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if got := status.Code(err); got != codes.NotFound {
		t.Fatalf("expected status code NotFound, got %v", got)
	}
}
