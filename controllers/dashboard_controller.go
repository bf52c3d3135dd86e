package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/services"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func AdminSummary(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"dashboard": "admin",
			"summary":   services.Summarize(d.Store),
			"sections":  []string{"users", "resources", "requests", "settings"},
		})
	}
}

func FacultySummary(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"dashboard": "faculty",
			"summary":   services.Summarize(d.Store),
			"sections":  []string{"resources", "students", "schedule"},
		})
	}
}

// ExportResources tải toàn bộ catalog dạng .xlsx
func ExportResources(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := services.ExportResourcesXLSX(d.Store.All())
		if err != nil {
			d.Logger.Error("export resources failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xuất file"})
			return
		}
		filename := fmt.Sprintf("resources-%s.xlsx", d.now().Format("20060102"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, xlsxContentType, data)
	}
}
