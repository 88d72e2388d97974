package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/stocknest/backend/pkg/helpers"
	"github.com/stocknest/backend/pkg/response"
)

// Auth validates the access-token cookie and, when Redis is configured,
// requires a live session whose sid matches the token.
// It sets userID and userName in the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Missing access token")
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid access token")
			return
		}
		uid, err := claims.UserID()
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid access token")
			return
		}

		if rdb != nil {
			key := "user:session:" + strconv.FormatInt(uid, 10)
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
				response.AbortError(c, http.StatusUnauthorized, "Session not found")
				return
			}
			c.Set("userName", data["username"])
		}

		c.Set("userID", uid)
		c.Next()
	}
}
