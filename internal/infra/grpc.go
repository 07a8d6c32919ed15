package infra

import (
	"github.com/umalmyha/customer-accounts/internal/auth"
	"github.com/umalmyha/customer-accounts/internal/config"
	"github.com/umalmyha/customer-accounts/internal/handlers"
	"github.com/umalmyha/customer-accounts/internal/interceptors"
	"github.com/umalmyha/customer-accounts/internal/service"
	"github.com/umalmyha/customer-accounts/proto"
	"google.golang.org/grpc"
)

func GrpcServer(cfg config.Config, customerSvc service.CustomerService) *grpc.Server {
	unary := []grpc.UnaryServerInterceptor{
		interceptors.ErrorUnaryInterceptor(interceptors.UnaryApplicableForService(proto.CustomerServiceName)),
	}

	if cfg.AuthEnabled() {
		jwtValidator := auth.NewJwtValidator(cfg.JwtCfg.SigningMethod, cfg.JwtCfg.PublicKey)
		unary = append(unary, interceptors.AuthUnaryInterceptor(jwtValidator, interceptors.UnaryApplicableForService(proto.CustomerServiceName)))
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(unary...))
	proto.RegisterCustomerServiceServer(server, handlers.NewCustomerGrpcHandler(customerSvc))
	return server
}
