package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-academy-backend/middleware"
	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
	"go.uber.org/zap"
)

type ResourceRequestInput struct {
	Title       string `json:"title" binding:"required"`
	Authors     string `json:"authors" binding:"required"`
	Type        string `json:"type"`
	Publisher   string `json:"publisher"`
	Year        *int   `json:"year"`
	Link        string `json:"link"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
}

// SubmitRequest nhận yêu cầu bổ sung tài liệu.
// Lỗi chỉ trả về thông báo cho người dùng, không có gì được lưu dở dang.
func SubmitRequest(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResourceRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		req, err := services.NormalizeRequest(models.ResourceRequest{
			Title:       input.Title,
			Authors:     input.Authors,
			Type:        models.ResourceType(input.Type),
			Publisher:   input.Publisher,
			Year:        input.Year,
			Link:        input.Link,
			Description: input.Description,
			Priority:    models.RequestPriority(input.Priority),
			SubmittedBy: middleware.SessionFrom(c).UserID,
		}, d.now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ack, err := d.Sink.Submit(c.Request.Context(), req)
		if err != nil {
			d.Logger.Error("submit resource request failed", zap.String("id", req.ID.String()), zap.Error(err))
			status := http.StatusBadGateway
			if errors.Is(err, services.ErrInvalidRequest) {
				status = http.StatusBadRequest
			}
			msg := ack.Message
			if msg == "" {
				msg = "Không thể gửi yêu cầu, vui lòng thử lại"
			}
			c.JSON(status, gin.H{"success": false, "error": msg})
			return
		}

		c.JSON(http.StatusCreated, ack)
	}
}
