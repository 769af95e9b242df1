package grpcserver

import (
	"errors"

	"github.com/riftbroker/rift/internal/domain"
	"google.golang.org/grpc/codes"
)

// codeFor maps a domain sentinel error to the gRPC status code a caller
// should see for it.
func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, domain.ErrTopicNotFound), errors.Is(err, domain.ErrSubscriptionNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrTopicAlreadyExists), errors.Is(err, domain.ErrSubscriptionAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, domain.ErrAlreadySubscribed), errors.Is(err, domain.ErrUnknownLease):
		return codes.FailedPrecondition
	case errors.Is(err, domain.ErrInvalidArgument):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrInternal):
		return codes.Internal
	default:
		return codes.Internal
	}
}
