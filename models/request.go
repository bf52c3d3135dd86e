package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"    // Nice to have
	PriorityMedium RequestPriority = "medium" // Would be helpful
	PriorityHigh   RequestPriority = "high"   // Needed for current work
	PriorityUrgent RequestPriority = "urgent" // Critical for deadline
)

func (p RequestPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ResourceRequest là yêu cầu bổ sung tài liệu do người dùng gửi
type ResourceRequest struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Authors     string          `gorm:"size:500;not null" json:"authors"` // cách nhau bởi dấu phẩy
	Type        ResourceType    `gorm:"type:varchar(20);not null;default:'paper'" json:"type"`
	Publisher   string          `gorm:"size:255" json:"publisher"`
	Year        *int            `json:"year,omitempty"`
	Link        string          `gorm:"type:text" json:"link"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Priority    RequestPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	SubmittedBy string          `gorm:"size:100;index" json:"submitted_by"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// RequestAck là phản hồi của sink sau khi nhận yêu cầu
type RequestAck struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}
