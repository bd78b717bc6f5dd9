package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// metricsInterceptor records per-method request counts and latency.
func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if s.metrics == nil {
		return handler(ctx, req)
	}

	start := time.Now()
	resp, err := handler(ctx, req)

	s.metrics.RequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	s.metrics.RequestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()

	return resp, err
}
