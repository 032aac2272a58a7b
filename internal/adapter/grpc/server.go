package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/savings-planner/internal/adapter/dto"
	"github.com/simaogato/savings-planner/internal/domain"
	"github.com/simaogato/savings-planner/internal/usecase/projection"
	"github.com/simaogato/savings-planner/internal/usecase/report"
)

const (
	ServiceName = "savings.v1.SavingsPlanner"

	ComputeProjectionMethod = "/" + ServiceName + "/ComputeProjection"
	RenderReportMethod      = "/" + ServiceName + "/RenderReport"

	// Response header keys carrying the report's file metadata
	HeaderContentDisposition = "content-disposition"
	HeaderMimeType           = "x-mime-type"
)

// PlannerServer is the server API for the SavingsPlanner service.
// Requests and projections travel as google.protobuf.Struct in the same
// shape as the JSON API bodies.
type PlannerServer interface {
	ComputeProjection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RenderReport(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error)
}

// Server implements the SavingsPlanner gRPC server
type Server struct {
	ReportService *report.ReportService
}

// NewServer creates a new gRPC server instance
func NewServer(reportService *report.ReportService) *Server {
	return &Server{
		ReportService: reportService,
	}
}

// ComputeProjection handles the ComputeProjection RPC.
// Struct fields are unordered, so expenses_by_category is sent as a list of
// {"category", "amount"} objects in first-seen order instead of the JSON
// API's object.
func (s *Server) ComputeProjection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	data, err := decodeRequest(req)
	if err != nil {
		return nil, mapError(err)
	}

	p := projection.Calculate(data)
	body, err := json.Marshal(dto.NewProjectionResponse(p))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &structpb.Struct{}
	if err := protojson.Unmarshal(body, resp); err != nil {
		return nil, mapError(err)
	}
	resp.Fields["expenses_by_category"] = categoryList(p.ExpensesByCategory)
	return resp, nil
}

// categoryList encodes totals as an ordered ListValue
func categoryList(totals domain.CategoryTotals) *structpb.Value {
	values := make([]*structpb.Value, 0, len(totals))
	for _, total := range totals {
		values = append(values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"category": structpb.NewStringValue(total.Category),
				"amount":   structpb.NewNumberValue(total.Amount.InexactFloat64()),
			},
		}))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

// RenderReport handles the RenderReport RPC.
// The file name and MIME type are sent as response header metadata.
func (s *Server) RenderReport(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	data, err := decodeRequest(req)
	if err != nil {
		return nil, mapError(err)
	}

	file, err := s.ReportService.Render(ctx, data)
	if err != nil {
		return nil, mapError(err)
	}

	header := metadata.Pairs(
		HeaderContentDisposition, "attachment; filename="+file.Filename,
		HeaderMimeType, file.ContentType,
	)
	if err := grpc.SetHeader(ctx, header); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to set response header: %v", err)
	}

	return wrapperspb.Bytes(file.Content), nil
}

// decodeRequest runs a Struct through the same validation as the JSON API
func decodeRequest(req *structpb.Struct) (domain.ExpenseData, error) {
	if req == nil {
		return domain.ExpenseData{}, fmt.Errorf("%w: empty request", dto.ErrInvalidInput)
	}
	body, err := protojson.Marshal(req)
	if err != nil {
		return domain.ExpenseData{}, fmt.Errorf("%w: %v", dto.ErrInvalidInput, err)
	}
	return dto.Parse(body)
}

// mapError converts usecase and validation errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, dto.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Errorf(codes.Internal, "%s", err.Error())
	}
}

func computeProjectionHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlannerServer).ComputeProjection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComputeProjectionMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlannerServer).ComputeProjection(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func renderReportHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlannerServer).RenderReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RenderReportMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlannerServer).RenderReport(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// PlannerServiceDesc describes the SavingsPlanner service for grpc.Server.RegisterService
var PlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlannerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ComputeProjection",
			Handler:    computeProjectionHandler,
		},
		{
			MethodName: "RenderReport",
			Handler:    renderReportHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "savings/v1/planner.proto",
}

// RegisterPlannerServer registers srv on s
func RegisterPlannerServer(s grpc.ServiceRegistrar, srv PlannerServer) {
	s.RegisterService(&PlannerServiceDesc, srv)
}

// NewGRPCServer builds a grpc.Server with logging and auth interceptors, the
// planner service, the standard health service and reflection.
func NewGRPCServer(planner PlannerServer, apiToken string, logger logrus.FieldLogger) (*grpc.Server, *health.Server) {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(logger),
			AuthInterceptor(apiToken),
		),
	)

	RegisterPlannerServer(server, planner)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	reflection.Register(server)

	return server, healthServer
}
