package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"mesto-be/internal/apperr"
)

// TokenCookie is the cookie sign-in stores the token in.
const TokenCookie = "jwt"

// TokenValidator verifies a token and returns the user ID it was issued for.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Identity is the authenticated user acting on a request.
type Identity struct {
	UserID string
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the acting identity bound by AuthMiddleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}

// AuthMiddleware rejects requests without a valid token. On success the
// acting identity is bound to the request context for downstream handlers.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.Error(apperr.Unauthorized("Authorization required"))
			c.Abort()
			return
		}

		userID, err := tokens.ValidateToken(token)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), Identity{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractToken reads a bearer token from the Authorization header, falling
// back to the token cookie.
func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", false
		}
		token := strings.TrimSpace(parts[1])
		return token, token != ""
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// ActingUserID returns the authenticated user ID, or an Unauthorized error
// if the route was not wrapped by AuthMiddleware.
func ActingUserID(c *gin.Context) (string, error) {
	id, ok := IdentityFrom(c.Request.Context())
	if !ok {
		return "", apperr.Unauthorized("Authorization required")
	}
	return id.UserID, nil
}
