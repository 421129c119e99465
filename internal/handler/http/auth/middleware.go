package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"newsdesk/internal/handler/http/respond"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// Claims is the authenticated identity extracted from a valid token.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

// ClaimsFromContext returns the authenticated user's claims, or nil
// for anonymous requests (public endpoints and public reads).
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ctxClaims).(*Claims)
	return claims
}

// WithClaims returns a context carrying the given claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxClaims, claims)
}

// Authz enforces authentication and role permissions.
//
// Order of checks:
//  1. Public endpoints (probes, metrics, docs, token) pass untouched.
//  2. Safe methods on reader endpoints (published feed, breaking
//     ticker, catalogs) pass without a token.
//  3. Everything else requires a valid HS256 bearer token whose role
//     permits the method and path; the claims land in the context.
func Authz(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicEndpoint(r.URL.Path) || IsPublicRead(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validateJWT(r.Header.Get("Authorization"), secret)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			if !checkRolePermission(claims.Role, r.Method, r.URL.Path) {
				respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func validateJWT(authz string, secret []byte) (*Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return nil, errors.New("missing bearer token")
	}

	tok, err := jwt.Parse(strings.TrimPrefix(authz, prefix), func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if exp, ok := mapClaims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return nil, errors.New("token expired")
	}
	email, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid sub claim")
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, errors.New("invalid role claim")
	}
	// JSON numbers arrive as float64.
	uid, ok := mapClaims["uid"].(float64)
	if !ok {
		return nil, errors.New("invalid uid claim")
	}

	return &Claims{UserID: int64(uid), Email: email, Role: role}, nil
}
