package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/services"
)

// RouteGuard áp dụng services.Authorize cho các route trang
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := services.Authorize(c.Request.URL.Path, SessionFrom(c))
		GuardDecisions.WithLabelValues(string(decision.Kind)).Inc()
		switch decision.Kind {
		case services.DecisionRedirect:
			c.Redirect(http.StatusFound, decision.Location)
			c.Abort()
		case services.DecisionNotFound:
			NotFoundPage(c)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// NotFoundPage là trang 404 cho mọi đường dẫn không khớp
func NotFoundPage(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"page":    "not-found",
		"error":   "Không tìm thấy trang",
		"path":    c.Request.URL.Path,
		"go_home": services.PathHome,
	})
}
