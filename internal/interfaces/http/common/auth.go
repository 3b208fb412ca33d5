package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const adminContextKey contextKey = "admin"

// AdminPrincipal is the subject of a verified admin token.
type AdminPrincipal struct {
	Subject string `json:"sub"`
	Name    string `json:"name,omitempty"`
}

// ContextWithAdmin stores the verified principal into context.
func ContextWithAdmin(ctx context.Context, admin AdminPrincipal) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

// AdminFromContext extracts the verified principal from context.
func AdminFromContext(ctx context.Context) (AdminPrincipal, bool) {
	admin, ok := ctx.Value(adminContextKey).(AdminPrincipal)
	return admin, ok
}

// AdminClaims is the HS256 token payload accepted on admin routes.
type AdminClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// BearerAuth verifies `Authorization: Bearer <jwt>` signed with secret. When
// issuer is non-empty the token's iss must match.
func BearerAuth(logger *zap.Logger, secret []byte, issuer string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				WriteError(logger, w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				WriteError(logger, w, http.StatusUnauthorized, "expected a Bearer token")
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			claims, err := ParseAdminToken(tokenString, secret, issuer)
			if err != nil {
				if logger != nil {
					logger.Debug("admin token rejected", zap.Error(err))
				}
				WriteError(logger, w, http.StatusUnauthorized, "invalid access token")
				return
			}

			ctx := ContextWithAdmin(r.Context(), AdminPrincipal{Subject: claims.Subject, Name: claims.Name})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseAdminToken validates signature, expiry, issuer and subject.
func ParseAdminToken(tokenString string, secret []byte, issuer string) (*AdminClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("empty token")
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("admin auth is not configured")
	}

	opts := []jwt.ParserOption{
		jwt.WithLeeway(30 * time.Second),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}
