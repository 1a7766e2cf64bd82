package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/gamepulse/gamepulse-api/internal/compat"
	"github.com/gamepulse/gamepulse-api/internal/planner"
	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

// Client calls the advisor service over a gRPC connection
type Client struct {
	conn     grpc.ClientConnInterface
	clientID string
}

// NewClient creates a client. clientID is sent as x-client-id for rate
// limiting and may be empty.
func NewClient(conn grpc.ClientConnInterface, clientID string) *Client {
	return &Client{conn: conn, clientID: clientID}
}

// Estimate returns the estimated frame rate
func (c *Client) Estimate(ctx context.Context, req GameRequest) (int, error) {
	var resp EstimateResponse
	if err := c.invoke(ctx, MethodEstimate, req, &resp); err != nil {
		return 0, err
	}
	return resp.EstimatedFPS, nil
}

// Classify classifies a PC against a game
func (c *Client) Classify(ctx context.Context, req GameRequest) (compat.Result, error) {
	var resp compat.Result
	err := c.invoke(ctx, MethodClassify, req, &resp)
	return resp, err
}

// RecommendUpgrades selects budget-tier upgrades
func (c *Client) RecommendUpgrades(ctx context.Context, req UpgradeRequest) (upgrade.Result, error) {
	var resp upgrade.Result
	err := c.invoke(ctx, MethodRecommendUpgrades, req, &resp)
	return resp, err
}

// PlanUpgrades builds a dollar-budgeted upgrade plan
func (c *Client) PlanUpgrades(ctx context.Context, req PlanRequest) (planner.Plan, error) {
	var resp planner.Plan
	err := c.invoke(ctx, MethodPlanUpgrades, req, &resp)
	return resp, err
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any) error {
	in, err := encodeStruct(req)
	if err != nil {
		return err
	}
	if c.clientID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, ClientIDHeader, c.clientID)
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return err
	}
	return decodeStruct(out, resp)
}
