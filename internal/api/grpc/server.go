// Package grpc provides gRPC server implementation for the advisor core
package grpc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/gamepulse/gamepulse-api/internal/advisor"
	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/compat"
	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/planner"
	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	// Address to listen on
	Address string
	// TLS configuration
	CertFile  string
	KeyFile   string
	CAFile    string
	EnableTLS bool
	// Rate limiting
	RateLimitPerClient int // requests per minute per client
	// Engine answers the core operations
	Engine Engine
}

// Engine is the core the server exposes
type Engine interface {
	Estimate(specs performance.Specs, title string) int
	Classify(specs performance.Specs, title string) (compat.Result, error)
	Recommend(specs performance.Specs, title string, budget catalog.BudgetTier) (upgrade.Result, error)
	Plan(ctx context.Context, specs performance.Specs, title string, budget float64, targetFPS int) (planner.Plan, error)
}

// Server implements the advisor gRPC service
type Server struct {
	config      *ServerConfig
	grpcServer  *grpc.Server
	rateLimiter *RateLimiter
	engine      Engine
}

// NewServer creates a new gRPC server
func NewServer(config *ServerConfig) (*Server, error) {
	if config.Engine == nil {
		return nil, errors.New("engine is required")
	}

	s := &Server{
		config:      config,
		rateLimiter: NewRateLimiter(config.RateLimitPerClient),
		engine:      config.Engine,
	}

	var opts []grpc.ServerOption

	// Configure mTLS if enabled
	if config.EnableTLS {
		tlsConfig, err := s.loadTLSConfig()
		if err != nil {
			s.rateLimiter.Close()
			return nil, fmt.Errorf("failed to load TLS config: %w", err)
		}
		opts = append(opts, grpc.Creds(credentials.NewTLS(tlsConfig)))
	}

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			s.loggingUnaryInterceptor,
			s.rateLimitUnaryInterceptor,
		),
	)

	s.grpcServer = grpc.NewServer(opts...)
	s.grpcServer.RegisterService(&serviceDesc, s)

	return s, nil
}

// loadTLSConfig loads mTLS configuration
func (s *Server) loadTLSConfig() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(s.config.CertFile, s.config.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load server certificate: %w", err)
	}

	caCert, err := os.ReadFile(s.config.CAFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    caPool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// Serve starts the gRPC server
func (s *Server) Serve(listener net.Listener) error {
	slog.Info("Starting gRPC server", "address", listener.Addr().String())
	return s.grpcServer.Serve(listener)
}

// GracefulStop gracefully stops the server
func (s *Server) GracefulStop() {
	slog.Info("Gracefully stopping gRPC server")
	s.grpcServer.GracefulStop()
	s.rateLimiter.Close()
}

// Stop immediately stops the server
func (s *Server) Stop() {
	slog.Info("Stopping gRPC server")
	s.grpcServer.Stop()
	s.rateLimiter.Close()
}

// Estimate returns the estimated frame rate. Unknown games are not an error.
func (s *Server) Estimate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GameRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	return respond(EstimateResponse{EstimatedFPS: s.engine.Estimate(req.Specs, req.Game)})
}

// Classify classifies a PC against a game
func (s *Server) Classify(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GameRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if err := requireSpecs(req.Specs); err != nil {
		return nil, err
	}

	result, err := s.engine.Classify(req.Specs, req.Game)
	if err != nil {
		return nil, toStatus(err)
	}
	return respond(result)
}

// RecommendUpgrades selects budget-tier upgrades
func (s *Server) RecommendUpgrades(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req UpgradeRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if err := requireSpecs(req.Specs); err != nil {
		return nil, err
	}
	result, err := s.engine.Recommend(req.Specs, req.Game, catalog.ParseBudgetTier(string(req.Budget)))
	if err != nil {
		return nil, toStatus(err)
	}
	return respond(result)
}

// PlanUpgrades builds a dollar-budgeted upgrade plan
func (s *Server) PlanUpgrades(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req PlanRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if err := requireSpecs(req.Specs); err != nil {
		return nil, err
	}

	plan, err := s.engine.Plan(ctx, req.Specs, req.Game, req.Budget, req.TargetFPS)
	if err != nil {
		return nil, toStatus(err)
	}
	return respond(plan)
}

func requireSpecs(specs performance.Specs) error {
	if strings.TrimSpace(specs.CPU) == "" {
		return status.Error(codes.InvalidArgument, "specs.cpu is required")
	}
	return nil
}

func respond(v any) (*structpb.Struct, error) {
	msg, err := encodeStruct(v)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	return msg, nil
}

// toStatus maps advisor errors to gRPC status codes
func toStatus(err error) error {
	switch {
	case errors.Is(err, advisor.ErrGameNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, advisor.ErrSpecsRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		slog.Error("Advisor call failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
