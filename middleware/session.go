package middleware

import (
	"strings"

	"restaurant-cart/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader     = "X-Cart-Session"
	sessionContextKey = "cart_session"
	maxSessionLength  = 128
)

// CartSession picks the cart a request belongs to: a valid bearer token wins,
// then the X-Cart-Session header, otherwise a new anonymous session is issued.
// The chosen id is echoed back in the X-Cart-Session response header.
func CartSession(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if sub, err := utils.ValidateToken(parts[1], jwtSecret); err == nil {
					session = "user:" + sub
				}
			}
		}

		if session == "" {
			h := strings.TrimSpace(c.GetHeader(SessionHeader))
			if h != "" && len(h) <= maxSessionLength && !strings.HasPrefix(h, "user:") {
				session = h
			}
		}

		if session == "" {
			session = uuid.NewString()
		}

		c.Set(sessionContextKey, session)
		c.Header(SessionHeader, session)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
