// Package pb describes the gibbs.v1.EnergyService gRPC service.
//
// Requests and responses are google.protobuf.Struct messages, so the service
// needs no generated message types; field names are documented on each method.
package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	EnergyService_Calculate_FullMethodName = "/gibbs.v1.EnergyService/Calculate"
	EnergyService_Compare_FullMethodName   = "/gibbs.v1.EnergyService/Compare"
	EnergyService_Combine_FullMethodName   = "/gibbs.v1.EnergyService/Combine"
)

// EnergyServiceClient is the client API for EnergyService.
type EnergyServiceClient interface {
	// Calculate evaluates ΔG for one transport event
	Calculate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Compare orders two transport events {a, b} by ΔG
	Compare(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Combine sums the ΔG of two transport events {a, b}
	Combine(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type energyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEnergyServiceClient(cc grpc.ClientConnInterface) EnergyServiceClient {
	return &energyServiceClient{cc}
}

func (c *energyServiceClient) Calculate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, EnergyService_Calculate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *energyServiceClient) Compare(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, EnergyService_Compare_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *energyServiceClient) Combine(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, EnergyService_Combine_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// EnergyServiceServer is the server API for EnergyService.
// Implementations must embed UnimplementedEnergyServiceServer.
type EnergyServiceServer interface {
	Calculate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Compare(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Combine(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedEnergyServiceServer()
}

// UnimplementedEnergyServiceServer returns codes.Unimplemented for every method.
type UnimplementedEnergyServiceServer struct{}

func (UnimplementedEnergyServiceServer) Calculate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Calculate not implemented")
}

func (UnimplementedEnergyServiceServer) Compare(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Compare not implemented")
}

func (UnimplementedEnergyServiceServer) Combine(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Combine not implemented")
}

func (UnimplementedEnergyServiceServer) mustEmbedUnimplementedEnergyServiceServer() {}

func RegisterEnergyServiceServer(s grpc.ServiceRegistrar, srv EnergyServiceServer) {
	s.RegisterService(&EnergyService_ServiceDesc, srv)
}

func unaryHandler(fullMethod string, call func(EnergyServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EnergyServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EnergyServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EnergyService_ServiceDesc is the grpc.ServiceDesc for EnergyService.
var EnergyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gibbs.v1.EnergyService",
	HandlerType: (*EnergyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Calculate",
			Handler:    unaryHandler(EnergyService_Calculate_FullMethodName, EnergyServiceServer.Calculate),
		},
		{
			MethodName: "Compare",
			Handler:    unaryHandler(EnergyService_Compare_FullMethodName, EnergyServiceServer.Compare),
		},
		{
			MethodName: "Combine",
			Handler:    unaryHandler(EnergyService_Combine_FullMethodName, EnergyServiceServer.Combine),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gibbs/v1/energy.proto",
}
