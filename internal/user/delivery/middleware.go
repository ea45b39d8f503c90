package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vidtube-backend/internal/user/usecase"
	"vidtube-backend/pkg/response"
)

// ContextUserKey is where the middleware stores the resolved identity.
const ContextUserKey = "currentUser"

// AuthMiddleware gates protected routes. The access token is read from the
// accessToken cookie first, then from the Authorization header.
func AuthMiddleware(userUsecase usecase.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, response.NewError(http.StatusUnauthorized, "unauthorized request"))
			c.Abort()
			return
		}

		user, err := userUsecase.VerifyAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.NewError(http.StatusUnauthorized, "invalid access token"))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
