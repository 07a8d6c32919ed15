package interceptors

import (
	"context"
	"strings"

	"github.com/umalmyha/customer-accounts/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const authorizationMetadataKey = "authorization"

// AuthUnaryInterceptor verifies that bearer jwt is provided in metadata and valid
func AuthUnaryInterceptor(validator *auth.JwtValidator, applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		headers, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "no auth info provided")
		}

		authHdr := headers.Get(authorizationMetadataKey)
		if len(authHdr) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization header is missing")
		}

		token, ok := bearerToken(authHdr[0])
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization header format")
		}

		claims, err := validator.Verify(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid access token provided - %v", err)
		}

		return h(auth.WithClaims(ctx, claims), req)
	}
}

func bearerToken(hdr string) (string, bool) {
	hdrSplit := strings.Split(hdr, " ")
	if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], "Bearer") || hdrSplit[1] == "" {
		return "", false
	}
	return hdrSplit[1], true
}
