package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/middleware"
	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
	"github.com/vnkhanh/e-academy-backend/utils"
	"go.uber.org/zap"
)

const (
	maxFeaturedCount = 20
	noResourcesFound = "We couldn't find any resources matching your criteria. Try adjusting your filters or search term."
)

// ResourceView là tài liệu kèm phần hiển thị đã định dạng
type ResourceView struct {
	models.Resource
	Display utils.ResourceDisplay `json:"display"`
}

func toViews(rs []models.Resource) []ResourceView {
	out := make([]ResourceView, 0, len(rs))
	for _, r := range rs {
		out = append(out, ResourceView{Resource: r, Display: utils.Display(r)})
	}
	return out
}

type ResourceListResponse struct {
	Total        int                   `json:"total"`
	Resources    []ResourceView        `json:"resources"`
	Criteria     models.FilterCriteria `json:"criteria"`
	ActiveFilter int                   `json:"active_filters"`
	Query        string                `json:"query"` // query string để đồng bộ URL
	Message      string                `json:"message,omitempty"`
}

// ListResources trả về catalog đã lọc và sắp xếp theo tham số URL.
// Lỗi từ nguồn dữ liệu chỉ ghi log, client nhận danh sách rỗng.
func ListResources(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := services.CriteriaFromQuery(c.Request.URL.Query(), d.now(), d.Store.ResolveCategory)

		resources, err := d.Source.ListResources(c.Request.Context(), &criteria)
		if err != nil {
			d.Logger.Error("error loading resources",
				zap.String("request_id", c.GetString("request_id")),
				zap.Error(err),
			)
			resources = []models.Resource{}
		}
		middleware.CatalogQueryResults.Observe(float64(len(resources)))

		resp := ResourceListResponse{
			Total:        len(resources),
			Resources:    toViews(resources),
			Criteria:     criteria,
			ActiveFilter: criteria.ActiveFilterCount(),
			Query:        services.CriteriaToQuery(criteria).Encode(),
		}
		if len(resources) == 0 {
			resp.Message = noResourcesFound
		}
		c.JSON(http.StatusOK, resp)
	}
}

func GetResource(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		r, err := d.Source.GetResource(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrResourceNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài liệu"})
				return
			}
			d.Logger.Error("error loading resource", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải tài liệu"})
			return
		}
		c.JSON(http.StatusOK, ResourceView{Resource: r, Display: utils.Display(r)})
	}
}

func FeaturedResources(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		count := services.DefaultFeaturedCount
		if v := c.Query("count"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				count = n
			}
		}
		if count > maxFeaturedCount {
			count = maxFeaturedCount
		}

		resources, err := d.Source.ListFeatured(c.Request.Context(), count)
		if err != nil {
			d.Logger.Error("error loading featured resources", zap.Error(err))
			resources = []models.Resource{}
		}
		c.JSON(http.StatusOK, gin.H{"resources": toViews(resources)})
	}
}

func GetCategories(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories":    d.Store.Categories(),
			"types":         models.AllResourceTypes,
			"access_levels": models.AllAccessLevels,
		})
	}
}
