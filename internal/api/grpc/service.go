// Package grpc provides gRPC server implementation
package grpc

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/performance"
)

// ServiceName is the fully qualified gRPC service name. Messages travel as
// google.protobuf.Struct carrying the JSON shapes below.
const ServiceName = "gamepulse.advisor.v1.Advisor"

// Method names
const (
	MethodEstimate          = "Estimate"
	MethodClassify          = "Classify"
	MethodRecommendUpgrades = "RecommendUpgrades"
	MethodPlanUpgrades      = "PlanUpgrades"
)

// GameRequest identifies a PC and a game
type GameRequest struct {
	Specs performance.Specs `json:"specs"`
	Game  string            `json:"game"`
}

// UpgradeRequest asks for budget-tier upgrades
type UpgradeRequest struct {
	Specs  performance.Specs  `json:"specs"`
	Game   string             `json:"game"`
	Budget catalog.BudgetTier `json:"budget"`
}

// PlanRequest asks for a dollar-budgeted upgrade plan
type PlanRequest struct {
	Specs     performance.Specs `json:"specs"`
	Game      string            `json:"game"`
	Budget    float64           `json:"budget"`
	TargetFPS int               `json:"targetFPS"`
}

// EstimateResponse carries an estimated frame rate
type EstimateResponse struct {
	EstimatedFPS int `json:"estimatedFPS"`
}

// advisorServer is the handler type registered under ServiceName
type advisorServer interface {
	Estimate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Classify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RecommendUpgrades(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	PlanUpgrades(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*advisorServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodEstimate, advisorServer.Estimate),
		unaryMethod(MethodClassify, advisorServer.Classify),
		unaryMethod(MethodRecommendUpgrades, advisorServer.RecommendUpgrades),
		unaryMethod(MethodPlanUpgrades, advisorServer.PlanUpgrades),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gamepulse/advisor/v1/advisor.proto",
}

type unaryCall func(advisorServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(advisorServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(advisorServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// decodeStruct converts a Struct message into v through its JSON form
func decodeStruct(msg *structpb.Struct, v any) error {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

// encodeStruct converts v into a Struct message through its JSON form
func encodeStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	msg := new(structpb.Struct)
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	return msg, nil
}
