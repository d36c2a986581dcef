// internal/core/api/grpc.go
package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/solatis/railplanner/internal/input"
	"github.com/solatis/railplanner/internal/types"
)

/*
 * gRPC binding for the planner service.
 *
 * The service is declared by hand over google.protobuf.Struct so no
 * generated code is needed. Request shape:
 *
 *   {
 *     "target_length": 6,
 *     "connections": ["A", "B"],
 *     "segments": [{"left": "A", "right": "B", "length": 3, "price": 7}, ...]
 *   }
 *
 * Response shape:
 *
 *   {"reachable": true, "price": "14", "run_id": "0190..."}
 *
 * price is a decimal string, "-1" when the target is unreachable. run_id is
 * empty when the server runs without a history database.
 *
 * Struct numbers are float64 on the wire, so integer request fields must be
 * integral and within +/-2^53. Summed prices can exceed that range, which is
 * why the response carries price as a string.
 */

const (
	// PlannerServiceName is the fully qualified gRPC service name.
	PlannerServiceName = "railplanner.v1.Planner"

	// MinimumCostMethod is the full method path of the single RPC.
	MinimumCostMethod = "/" + PlannerServiceName + "/MinimumCost"

	maxExactFloat = 1 << 53
)

var errBadRequest = errors.New("malformed request")

// PlannerServer is the server API for the planner service.
type PlannerServer interface {
	MinimumCost(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// PlannerServiceDesc describes the planner service for grpc.Server.RegisterService.
var PlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: PlannerServiceName,
	HandlerType: (*PlannerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "MinimumCost",
			Handler:    minimumCostHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "railplanner/v1/planner.proto",
}

func minimumCostHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlannerServer).MinimumCost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MinimumCostMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlannerServer).MinimumCost(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// PlannerClient calls the planner service over conn.
type PlannerClient struct {
	cc grpc.ClientConnInterface
}

// NewPlannerClient wraps an established client connection.
func NewPlannerClient(cc grpc.ClientConnInterface) *PlannerClient {
	return &PlannerClient{cc: cc}
}

// MinimumCost invokes the RPC with a raw request struct.
func (c *PlannerClient) MinimumCost(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MinimumCostMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoteResult is the decoded response of a MinimumCost call.
type RemoteResult struct {
	Reachable bool
	Price     int64
	RunID     types.RunID
}

// Plan sends a validated plan and decodes the response.
func (c *PlannerClient) Plan(ctx context.Context, plan *input.Plan, opts ...grpc.CallOption) (RemoteResult, error) {
	req, err := EncodePlan(plan)
	if err != nil {
		return RemoteResult{}, err
	}
	resp, err := c.MinimumCost(ctx, req, opts...)
	if err != nil {
		return RemoteResult{}, err
	}
	fields := resp.GetFields()
	price, err := strconv.ParseInt(fields["price"].GetStringValue(), 10, 64)
	if err != nil {
		return RemoteResult{}, fmt.Errorf("failed to decode price: %w", err)
	}
	return RemoteResult{
		Reachable: fields["reachable"].GetBoolValue(),
		Price:     price,
		RunID:     types.RunID(fields["run_id"].GetStringValue()),
	}, nil
}

// MinimumCost implements PlannerServer.
func (s *PlannerService) MinimumCost(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	plan, err := DecodePlan(req, s.limits)
	if err != nil {
		return nil, statusFromError(err)
	}

	out, err := s.Run(ctx, "grpc", plan)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp, err := structpb.NewStruct(map[string]any{
		"reachable": out.Result.IsReachable(),
		"price":     strconv.FormatInt(out.Result.Legacy(), 10),
		"run_id":    string(out.RunID),
	})
	if err != nil {
		return nil, statusFromError(fmt.Errorf("failed to encode response: %w", err))
	}
	return resp, nil
}

// EncodePlan converts a plan into the request struct.
func EncodePlan(plan *input.Plan) (*structpb.Struct, error) {
	symbols := plan.Catalog.Alphabet().Symbols()
	connections := make([]any, len(symbols))
	for i, s := range symbols {
		connections[i] = s.String()
	}

	segments := make([]any, 0, plan.Catalog.Len())
	plan.Catalog.Each(func(_ int, seg types.Segment) {
		segments = append(segments, map[string]any{
			"left":   seg.Left.String(),
			"right":  seg.Right.String(),
			"length": seg.Length,
			"price":  seg.Price,
		})
	})

	return structpb.NewStruct(map[string]any{
		"target_length": plan.TargetLength,
		"connections":   connections,
		"segments":      segments,
	})
}

// DecodePlan validates a request struct into a plan under limits.
func DecodePlan(req *structpb.Struct, limits input.Limits) (*input.Plan, error) {
	fields := req.GetFields()

	target, err := integerField(fields, "target_length")
	if err != nil {
		return nil, err
	}

	var labels []string
	for i, v := range fields["connections"].GetListValue().GetValues() {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%w: connections[%d] is not a string", errBadRequest, i)
		}
		labels = append(labels, sv.StringValue)
	}

	rawSegments := fields["segments"].GetListValue().GetValues()
	if len(rawSegments) > limits.MaxSegments {
		return nil, fmt.Errorf("%w: %d > %d", types.ErrTooManySegments, len(rawSegments), limits.MaxSegments)
	}
	segments := make([]types.Segment, len(rawSegments))
	for i, v := range rawSegments {
		seg, err := decodeSegment(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("segments[%d]: %w", i, err)
		}
		segments[i] = seg
	}

	return input.NewPlan(int(target), labels, segments, limits)
}

func decodeSegment(s *structpb.Struct) (types.Segment, error) {
	if s == nil {
		return types.Segment{}, fmt.Errorf("%w: segment is not an object", errBadRequest)
	}
	fields := s.GetFields()

	left, err := symbolField(fields, "left")
	if err != nil {
		return types.Segment{}, err
	}
	right, err := symbolField(fields, "right")
	if err != nil {
		return types.Segment{}, err
	}
	length, err := integerField(fields, "length")
	if err != nil {
		return types.Segment{}, err
	}
	price, err := integerField(fields, "price")
	if err != nil {
		return types.Segment{}, err
	}
	return types.Segment{Length: int(length), Left: left, Right: right, Price: price}, nil
}

func symbolField(fields map[string]*structpb.Value, name string) (types.Symbol, error) {
	sv, ok := fields[name].GetKind().(*structpb.Value_StringValue)
	if !ok || len(sv.StringValue) != 1 {
		return 0, fmt.Errorf("%w: %s must be a one-character string", errBadRequest, name)
	}
	return types.Symbol(sv.StringValue[0]), nil
}

func integerField(fields map[string]*structpb.Value, name string) (int64, error) {
	nv, ok := fields[name].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number", errBadRequest, name)
	}
	f := nv.NumberValue
	if f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return int64(f), nil
}
