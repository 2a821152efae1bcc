package middleware

import (
	"github.com/gin-gonic/gin"

	"tasq/internal/model"
	"tasq/pkg/response"
)

// Identity headers set by the authenticating proxy. The identity provider
// itself is an external collaborator; by the time a request reaches this
// service the headers are trusted.
const (
	HeaderUserID      = "X-User-Id"
	HeaderDisplayName = "X-User-Name"
	HeaderEmail       = "X-User-Email"
)

const scopeKey = "scope"

// Auth extracts the caller's identity into a model.Scope and rejects requests
// without one.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:      c.GetHeader(HeaderUserID),
			DisplayName: c.GetHeader(HeaderDisplayName),
			Email:       c.GetHeader(HeaderEmail),
		}
		if sc.UserID == "" {
			mw.l.Debugf(c.Request.Context(), "middleware: request without identity header rejected")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the Scope stored by Auth. The zero Scope means the
// route was registered without Auth, which is a wiring bug.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
