package tracing

import (
	"context"
	"testing"
)

func TestGetTraceIDAndSpanIDAbsent(t *testing.T) {
	ctx := context.Background()
	if got := GetTraceID(ctx); got != "" {
		t.Fatalf("expected empty trace id without a span, got %q", got)
	}
	if got := GetSpanID(ctx); got != "" {
		t.Fatalf("expected empty span id without a span, got %q", got)
	}
}
