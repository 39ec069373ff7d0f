package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the shared secret for operator endpoints.
const AdminTokenHeader = "X-Admin-Token"

// AdminToken admits requests presenting token in AdminTokenHeader. An empty
// token disables the guarded routes.
func AdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			abort(c, http.StatusForbidden, "forbidden", "admin endpoints are disabled")
			return
		}
		given := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
			abort(c, http.StatusForbidden, "forbidden", "invalid admin token")
			return
		}
		c.Next()
	}
}
