// Package proto describes customers gRPC service on top of well-known protobuf types.
// Responses carry encoded JSON:API documents as google.protobuf.BytesValue,
// the same bytes HTTP API responds with.
package proto

import (
	"context"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CustomerServiceName is full name of customers gRPC service
const CustomerServiceName = "customers.CustomerService"

const (
	customerServiceGetAllMethod     = "/customers.CustomerService/GetAll"
	customerServiceGetByIDMethod    = "/customers.CustomerService/GetByID"
	customerServiceGetRelatedMethod = "/customers.CustomerService/GetRelated"
)

// Fields of GetRelated request
const (
	RelatedRequestIDField           = "id"
	RelatedRequestRelationshipField = "relationship"
)

// CustomerServiceServer is the server API for CustomerService
type CustomerServiceServer interface {
	GetAll(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	GetByID(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BytesValue, error)
	GetRelated(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
}

// RegisterCustomerServiceServer registers CustomerService implementation
func RegisterCustomerServiceServer(s grpc.ServiceRegistrar, srv CustomerServiceServer) {
	s.RegisterService(&CustomerServiceDesc, srv)
}

// CustomerServiceDesc is grpc.ServiceDesc for CustomerService
var CustomerServiceDesc = grpc.ServiceDesc{
	ServiceName: CustomerServiceName,
	HandlerType: (*CustomerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAll", Handler: customerServiceGetAllHandler},
		{MethodName: "GetByID", Handler: customerServiceGetByIDHandler},
		{MethodName: "GetRelated", Handler: customerServiceGetRelatedHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "customers.proto",
}

func customerServiceGetAllHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(CustomerServiceServer).GetAll(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: customerServiceGetAllMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CustomerServiceServer).GetAll(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func customerServiceGetByIDHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(CustomerServiceServer).GetByID(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: customerServiceGetByIDMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CustomerServiceServer).GetByID(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func customerServiceGetRelatedHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(CustomerServiceServer).GetRelated(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: customerServiceGetRelatedMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CustomerServiceServer).GetRelated(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// CustomerServiceClient is the client API for CustomerService
type CustomerServiceClient interface {
	GetAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	GetByID(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	GetRelated(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type customerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCustomerServiceClient builds CustomerService client
func NewCustomerServiceClient(cc grpc.ClientConnInterface) CustomerServiceClient {
	return &customerServiceClient{cc: cc}
}

func (c *customerServiceClient) GetAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, customerServiceGetAllMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customerServiceClient) GetByID(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, customerServiceGetByIDMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customerServiceClient) GetRelated(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, customerServiceGetRelatedMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NewRelatedRequest builds GetRelated request, id is passed as string like JSON:API does
func NewRelatedRequest(id int64, relationship string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		RelatedRequestIDField:           structpb.NewStringValue(strconv.FormatInt(id, 10)),
		RelatedRequestRelationshipField: structpb.NewStringValue(relationship),
	}}
}
