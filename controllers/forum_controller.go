package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
)

func ListTopics(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sortBy := models.TopicSort(c.DefaultQuery("sort", string(models.TopicSortLatest)))
		topics := services.QueryTopics(d.Topics, models.TopicFilter{
			Query:    c.Query("q"),
			Category: c.DefaultQuery("category", "all"),
			Sort:     sortBy,
		})
		c.JSON(http.StatusOK, gin.H{
			"topics":     topics,
			"total":      len(topics),
			"categories": services.TopicCategories(d.Topics),
		})
	}
}
