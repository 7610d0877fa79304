package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

// contextKeyUserID is the gin context key under which the guard stores the
// authenticated subject id.
const contextKeyUserID = "auth_user_id"

const bearerPrefix = "Bearer "

// AccessGuard returns a middleware that verifies the bearer token before any
// protected handler runs.
//
// Status mapping, kept compatible with the original service: 401 for a
// missing or malformed Authorization header, 403 for a token that fails
// verification (expired or tampered). The 403 body names the reason, which
// helps debugging without exposing the signing secret.
func (s *HTTPServer) AccessGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, message("No token provided."))
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, message("Invalid token format."))
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)

		userID, err := s.users.Authorize(c.Request.Context(), token)
		if err != nil {
			reason := common.ErrInvalidToken
			if errors.Is(err, common.ErrTokenExpired) {
				reason = common.ErrTokenExpired
			}
			c.AbortWithStatusJSON(http.StatusForbidden, message(reason.Error()))
			return
		}

		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}

// UserID returns the subject id the guard attached to the request, or ""
// for an unguarded request.
func UserID(c *gin.Context) string {
	return c.GetString(contextKeyUserID)
}
