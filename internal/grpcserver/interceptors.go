package grpcserver

import (
	"context"
	"time"

	"github.com/riftbroker/rift/internal/logging"
	"github.com/riftbroker/rift/internal/tracing"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingUnaryInterceptor logs every unary RPC's method, duration, and
// outcome. It runs inside tracingUnaryInterceptor in the chain, so ctx
// already carries the RPC's span and the log line correlates to it.
func loggingUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	log := logging.OpWithTrace(tracing.GetTraceID(ctx), tracing.GetSpanID(ctx))
	start := time.Now()
	resp, err := handler(ctx, req)
	duration := time.Since(start)

	if err != nil {
		log.Warn("rpc failed", "method", info.FullMethod, "duration", duration, "error", err)
	} else {
		log.Debug("rpc completed", "method", info.FullMethod, "duration", duration)
	}
	return resp, err
}

// loggingStreamInterceptor logs a streaming RPC's lifetime and outcome.
func loggingStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	log := logging.OpWithTrace(tracing.GetTraceID(ss.Context()), tracing.GetSpanID(ss.Context()))
	start := time.Now()
	err := handler(srv, ss)
	duration := time.Since(start)

	if err != nil {
		log.Info("stream ended", "method", info.FullMethod, "duration", duration, "error", err)
	} else {
		log.Info("stream ended", "method", info.FullMethod, "duration", duration)
	}
	return err
}

// tracingUnaryInterceptor emits one span per unary RPC.
func tracingUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx, span := tracing.StartServerSpan(ctx, info.FullMethod)
	defer span.End()

	resp, err := handler(ctx, req)
	if err != nil {
		tracing.SetSpanError(span, err)
	} else {
		tracing.SetSpanOK(span)
	}
	return resp, err
}

// tracingStreamInterceptor emits one span covering the whole lifetime of a
// streaming RPC (e.g. Subscribe).
func tracingStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx, span := tracing.StartServerSpan(ss.Context(), info.FullMethod)
	defer span.End()

	err := handler(srv, &tracedServerStream{ServerStream: ss, ctx: ctx})
	if err != nil {
		tracing.SetSpanError(span, err)
	} else {
		tracing.SetSpanOK(span)
	}
	return err
}

type tracedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *tracedServerStream) Context() context.Context { return s.ctx }

// mapError translates a domain/broker error into its gRPC status.
// Unrecognized errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(codeFor(err), err.Error())
}
