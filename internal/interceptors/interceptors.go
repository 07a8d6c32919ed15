package interceptors

import (
	"strings"

	"google.golang.org/grpc"
)

// UnaryInterceptorApplicable decides if interceptor must run for the call
type UnaryInterceptorApplicable func(*grpc.UnaryServerInfo) bool

// all predicates must agree, no predicates means interceptor applies to every call
func isUnaryInterceptorApplicable(info *grpc.UnaryServerInfo, fns ...UnaryInterceptorApplicable) bool {
	for _, fn := range fns {
		if !fn(info) {
			return false
		}
	}
	return true
}

// UnaryApplicableForService limits interceptor to methods of service with provided full name
func UnaryApplicableForService(svc string) UnaryInterceptorApplicable {
	prefix := "/" + svc + "/"
	return func(info *grpc.UnaryServerInfo) bool {
		return strings.HasPrefix(info.FullMethod, prefix)
	}
}
