package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/middleware"
	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
	"go.uber.org/zap"
)

// Page trả về mô tả trang đã qua route guard
func Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, pageBody(c, name))
	}
}

func pageBody(c *gin.Context, name string) gin.H {
	role := services.ResolveRole(middleware.SessionFrom(c))
	return gin.H{
		"page": name,
		"path": c.Request.URL.Path,
		"role": role,
	}
}

// HomePage kèm danh sách tài liệu nổi bật
func HomePage(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := pageBody(c, "home")
		featured, err := d.Source.ListFeatured(c.Request.Context(), services.DefaultFeaturedCount)
		if err != nil {
			d.Logger.Error("error loading featured resources", zap.Error(err))
			featured = []models.Resource{}
		}
		body["featured"] = toViews(featured)
		body["forum_preview"] = services.QueryTopics(d.Topics, models.TopicFilter{Sort: models.TopicSortLatest})
		c.JSON(http.StatusOK, body)
	}
}

// BrowsePage kèm bộ lọc ban đầu đọc từ URL (type, category, q)
func BrowsePage(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := pageBody(c, "browse")
		criteria := services.CriteriaFromQuery(c.Request.URL.Query(), d.now(), d.Store.ResolveCategory)
		body["criteria"] = criteria
		body["categories"] = d.Store.Categories()
		c.JSON(http.StatusOK, body)
	}
}
