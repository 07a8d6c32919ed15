package handlers

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/umalmyha/customer-accounts/internal/jsonapi"
	"github.com/umalmyha/customer-accounts/internal/resource"
	"github.com/umalmyha/customer-accounts/internal/service"
	"github.com/umalmyha/customer-accounts/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CustomerGrpcHandler is gRPC handler for customers endpoint
type CustomerGrpcHandler struct {
	customerSvc service.CustomerService
}

var _ proto.CustomerServiceServer = (*CustomerGrpcHandler)(nil)

// NewCustomerGrpcHandler builds CustomerGrpcHandler
func NewCustomerGrpcHandler(customerSvc service.CustomerService) *CustomerGrpcHandler {
	return &CustomerGrpcHandler{customerSvc: customerSvc}
}

// GetAll get all customers
func (h *CustomerGrpcHandler) GetAll(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	customers, err := h.customerSvc.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return documentBytes(jsonapi.Collection(resource.Customers(customers)))
}

// GetByID get customer by id
func (h *CustomerGrpcHandler) GetByID(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.BytesValue, error) {
	c, err := h.customerSvc.FindByID(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return documentBytes(jsonapi.Single(resource.Customer(c)))
}

// GetRelated get related resources of customer
func (h *CustomerGrpcHandler) GetRelated(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	fields := req.GetFields()

	id, err := strconv.ParseInt(fields[proto.RelatedRequestIDField].GetStringValue(), 10, 64)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be integer string", proto.RelatedRequestIDField)
	}

	name := fields[proto.RelatedRequestRelationshipField].GetStringValue()
	if name == "" {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required", proto.RelatedRequestRelationshipField)
	}

	related, err := h.customerSvc.FindRelated(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return documentBytes(related.Document())
}

// documentBytes encodes document the same way HTTP handler does, decimals keep their precision
func documentBytes(doc any) (*wrapperspb.BytesValue, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bytes(b), nil
}
