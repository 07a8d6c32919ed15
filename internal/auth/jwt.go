package auth

import (
	"context"
	"crypto"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// JwtClaims represents JWT claims
type JwtClaims struct {
	jwt.RegisteredClaims
}

// JwtValidator verifies jwt according to config
type JwtValidator struct {
	method    jwt.SigningMethod
	publicKey crypto.PublicKey
}

// NewJwtValidator builds new JwtValidator
func NewJwtValidator(method jwt.SigningMethod, key crypto.PublicKey) *JwtValidator {
	return &JwtValidator{publicKey: key, method: method}
}

// Verify checks if jwt valid
func (j *JwtValidator) Verify(rawToken string) (JwtClaims, error) {
	var claims JwtClaims
	if _, err := jwt.ParseWithClaims(rawToken, &claims, j.keyFunc); err != nil {
		return JwtClaims{}, err
	}
	return claims, nil
}

func (j *JwtValidator) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != j.method.Alg() {
		return nil, errors.New("failed to verify signing algorithm")
	}
	return j.publicKey, nil
}

type claimsCtxKey struct{}

// WithClaims puts verified claims into context
func WithClaims(ctx context.Context, claims JwtClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, claims)
}

// ClaimsFromContext returns verified claims, false if request wasn't authorized
func ClaimsFromContext(ctx context.Context) (JwtClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(JwtClaims)
	return claims, ok
}
