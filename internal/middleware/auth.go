package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/session"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/token"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the resolved session identity, if any.
func IdentityFromContext(ctx context.Context) (*token.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*token.Identity)
	return ident, ok
}

type SessionMiddleware struct {
	tokens *token.Service
}

func NewSessionMiddleware(tokens *token.Service) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Resolve reads the session cookie and, when it parses, attaches the
// identity to the request context. It never rejects: a missing, expired
// or forged cookie is the same as no session, and each handler decides
// what an absent identity means.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			c.Next()
			return
		}

		ident, err := m.tokens.Parse(cookie.Value)
		if err != nil {
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, ident)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth aborts with 403 when Resolve attached no identity.
func (m *SessionMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "authentication required",
			})
			return
		}
		c.Next()
	}
}
