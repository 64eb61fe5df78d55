package middleware

import (
	"context"
	"log"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TimerMetrics interceptor tracks request duration and logs it
func TimerMetrics(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	// Record start time
	startTime := time.Now()

	// Continue processing the request
	resp, err := handler(ctx, req)

	// Calculate duration
	duration := time.Since(startTime)
	durationMs := duration.Milliseconds()

	// Log the metric
	log.Printf("[METRICS] %s - Duration: %dms (%.3fs)",
		info.FullMethod, durationMs, duration.Seconds())

	return resp, err
}

// Recover is the outermost guard: a panic that escapes a handler is logged
// and converted into a gRPC status so the transport never sees an unhandled
// fault.
func Recover(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic in %s: %v\n%s", info.FullMethod, r, debug.Stack())
			resp = nil
			err = status.Errorf(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}
