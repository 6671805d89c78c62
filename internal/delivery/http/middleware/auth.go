package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
)

const userIDKey = "userID"

// Auth is the gate in front of every mutating route: it verifies the bearer
// token and attaches the subject id to the request context. Rejection happens
// before any store access or file write.
func Auth(secret string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated!"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, custom_errors.ErrInvalidToken
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Debug("Token verification failed", slog.String("error", errString(err)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated!"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated!"})
			return
		}

		userID, err := subjectID(claims)
		if err != nil {
			log.Debug("Token carries no usable subject", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated!"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the subject id Auth stored on the context. Zero means the
// route was registered without the auth gate.
func UserID(c *gin.Context) int64 {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	id, _ := v.(int64)
	return id
}

func subjectID(claims jwt.MapClaims) (int64, error) {
	switch v := claims["userId"].(type) {
	case float64:
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, custom_errors.ErrInvalidToken
		}
		return id, nil
	}
	return 0, custom_errors.ErrInvalidToken
}

func errString(err error) string {
	if err == nil {
		return "token invalid"
	}
	return err.Error()
}
