package controllers

import (
	"time"

	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps gom các phụ thuộc mà handler cần
type Deps struct {
	Store  *services.CatalogStore
	Source services.CatalogSource
	Sink   services.RequestSink
	Topics []models.ForumTopic
	DB     *gorm.DB // nil khi không cấu hình postgres
	Logger *zap.Logger
	Now    func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
