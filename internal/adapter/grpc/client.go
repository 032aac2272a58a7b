package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/savings-planner/internal/adapter/dto"
	"github.com/simaogato/savings-planner/internal/domain"
)

// PlannerClient calls the SavingsPlanner service
type PlannerClient struct {
	cc    grpc.ClientConnInterface
	token string
}

// NewPlannerClient creates a client that sends token as the authorization metadata.
// An empty token sends none.
func NewPlannerClient(cc grpc.ClientConnInterface, token string) *PlannerClient {
	return &PlannerClient{cc: cc, token: token}
}

// ComputeProjection returns the projection for data in its JSON shape
func (c *PlannerClient) ComputeProjection(ctx context.Context, data domain.ExpenseData, opts ...grpc.CallOption) (*structpb.Struct, error) {
	req, err := RequestStruct(data)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(c.outgoing(ctx), ComputeProjectionMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderReport returns the xlsx report for data, with the file name and MIME
// type taken from the response header.
func (c *PlannerClient) RenderReport(ctx context.Context, data domain.ExpenseData, opts ...grpc.CallOption) (*domain.ReportFile, error) {
	req, err := RequestStruct(data)
	if err != nil {
		return nil, err
	}

	var header metadata.MD
	out := new(wrapperspb.BytesValue)
	opts = append(opts, grpc.Header(&header))
	if err := c.cc.Invoke(c.outgoing(ctx), RenderReportMethod, req, out, opts...); err != nil {
		return nil, err
	}

	file := &domain.ReportFile{
		Filename:    domain.ReportFilename,
		ContentType: domain.ReportContentType,
		Content:     out.GetValue(),
	}
	if values := header.Get(HeaderContentDisposition); len(values) > 0 {
		if _, params, err := mime.ParseMediaType(values[0]); err == nil && params["filename"] != "" {
			file.Filename = params["filename"]
		}
	}
	if values := header.Get(HeaderMimeType); len(values) > 0 {
		file.ContentType = values[0]
	}
	return file, nil
}

func (c *PlannerClient) outgoing(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", c.token)
}

// RequestStruct converts data into the Struct request shape
func RequestStruct(data domain.ExpenseData) (*structpb.Struct, error) {
	body, err := json.Marshal(dto.FromDomain(data))
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req := new(structpb.Struct)
	if err := protojson.Unmarshal(body, req); err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return req, nil
}
