// Package grpc provides gRPC server implementation
package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// loggingUnaryInterceptor logs unary RPC calls
func (s *Server) loggingUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()

	peerAddr := "unknown"
	if p, ok := peer.FromContext(ctx); ok {
		peerAddr = p.Addr.String()
	}

	resp, err := handler(ctx, req)

	logLevel := slog.LevelInfo
	if err != nil {
		logLevel = slog.LevelError
		// Caller mistakes are not server errors
		switch status.Code(err) {
		case codes.InvalidArgument, codes.NotFound, codes.ResourceExhausted:
			logLevel = slog.LevelWarn
		}
	}

	slog.Log(ctx, logLevel, "gRPC unary call",
		"method", info.FullMethod,
		"peer", peerAddr,
		"client_id", extractClientID(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
		"error", err,
	)

	return resp, err
}

// rateLimitUnaryInterceptor applies rate limiting to unary calls
func (s *Server) rateLimitUnaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	clientID := extractClientID(ctx)

	if !s.rateLimiter.Allow(clientID) {
		slog.Warn("Rate limit exceeded",
			"client_id", clientID,
			"method", info.FullMethod,
		)
		return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}

	return handler(ctx, req)
}
