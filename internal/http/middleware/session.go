package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the opaque cart token between visits. It is
	// not an identity; it only scopes a cart.
	SessionCookie = "shop_session"

	sessionHeader = "X-Session-Id"
	sessionCtxKey = "cartSessionID"

	sessionMaxAge = 60 * 60 * 24 * 30
)

// CartSession resolves the request's cart session: cookie first, then
// the X-Session-Id header, otherwise a freshly minted token that is
// set back on the response so the cart survives the next request.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = c.GetHeader(sessionHeader)
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, sessionID)
		c.Next()
	}
}

// SessionID returns the cart session resolved by CartSession, or ""
// when the middleware did not run.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
