package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/middleware"
	"github.com/vnkhanh/e-academy-backend/services"
)

// GetSession trả về vai trò hiện tại và trang đích mặc định
func GetSession(c *gin.Context) {
	session := middleware.SessionFrom(c)
	role := services.ResolveRole(session)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": session.Authenticated,
		"user_id":       session.UserID,
		"role":          role,
		"landing":       services.DefaultLandingRoute(role),
	})
}

// Navigate cho frontend hỏi trước quyết định của route guard
func Navigate(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tham số path"})
		return
	}
	decision := services.Authorize(path, middleware.SessionFrom(c))
	middleware.GuardDecisions.WithLabelValues(string(decision.Kind)).Inc()
	c.JSON(http.StatusOK, gin.H{
		"path":     path,
		"decision": decision,
	})
}
