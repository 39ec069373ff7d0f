package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokens         model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokens model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			abort(c, http.StatusUnauthorized, "unauthenticated", "missing authorization token")
			return
		}

		userID, err := m.tokens.ParseAccessToken(tokenString)
		if err != nil {
			m.logger.Debug("rejected access token", "path", c.Request.URL.Path, "error", err)
			abort(c, http.StatusUnauthorized, "unauthenticated", "invalid authorization token")
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(c.Request.Context(), userID))
		c.Next()
	}
}
