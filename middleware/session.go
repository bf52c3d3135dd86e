package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
	"github.com/vnkhanh/e-academy-backend/utils"
)

const (
	sessionKey    = "session"
	sessionCookie = "__session"
)

// SessionMiddleware đọc session token từ identity provider.
// Không có token hoặc token sai thì coi như khách (anonymous), không chặn request.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Anonymous
		if token := extractToken(c); token != "" {
			if claims, err := utils.VerifyToken(token); err == nil {
				session = models.Session{
					Authenticated: true,
					UserID:        claims.UserID,
					RoleClaim:     claims.Role,
				}
				c.Set("user_id", claims.UserID)
			}
		}
		c.Set(sessionKey, session)
		// role được tính lại cho từng request, không cache
		c.Set("role", string(services.ResolveRole(session)))
		c.Next()
	}
}

// extractToken thử Authorization, X-Auth-Token (cho iOS) rồi tới cookie
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		authHeader = c.GetHeader("X-Auth-Token")
	}
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}

// SessionFrom lấy session đã gắn vào context, mặc định là khách
func SessionFrom(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(models.Session); ok {
			return s
		}
	}
	return models.Anonymous
}

// RequireSignedIn dùng cho API: chưa đăng nhập trả 401
func RequireSignedIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).Authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bạn cần đăng nhập để sử dụng chức năng này"})
			c.Abort()
			return
		}
		c.Next()
	}
}
