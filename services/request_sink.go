package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/vnkhanh/e-academy-backend/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidRequest = errors.New("yêu cầu không hợp lệ")

const requestAckMessage = "Your request has been submitted successfully."

// RequestSink nhận yêu cầu bổ sung tài liệu
type RequestSink interface {
	Submit(ctx context.Context, req models.ResourceRequest) (models.RequestAck, error)
}

// NormalizeRequest gán giá trị mặc định và kiểm tra các trường bắt buộc
func NormalizeRequest(req models.ResourceRequest, now time.Time) (models.ResourceRequest, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Authors = strings.TrimSpace(req.Authors)
	req.Description = strings.TrimSpace(req.Description)
	req.Publisher = strings.TrimSpace(req.Publisher)
	req.Link = strings.TrimSpace(req.Link)

	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Authors == "" {
		missing = append(missing, "authors")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return req, fmt.Errorf("%w: thiếu %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}

	if req.Type == "" {
		req.Type = models.TypePaper
	}
	if !req.Type.Valid() {
		return req, fmt.Errorf("%w: type %q", ErrInvalidRequest, req.Type)
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.Valid() {
		return req, fmt.Errorf("%w: priority %q", ErrInvalidRequest, req.Priority)
	}
	if req.Year != nil && (*req.Year < 1000 || *req.Year > now.Year()+1) {
		return req, fmt.Errorf("%w: year %d", ErrInvalidRequest, *req.Year)
	}
	if req.Link != "" {
		u, err := url.Parse(req.Link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return req, fmt.Errorf("%w: link %q", ErrInvalidRequest, req.Link)
		}
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	return req, nil
}

// LogRequestSink chỉ ghi log và luôn trả về thành công
type LogRequestSink struct {
	logger *zap.Logger
}

func NewLogRequestSink(logger *zap.Logger) *LogRequestSink {
	return &LogRequestSink{logger: logger}
}

func (s *LogRequestSink) Submit(ctx context.Context, req models.ResourceRequest) (models.RequestAck, error) {
	if err := ctx.Err(); err != nil {
		return models.RequestAck{}, err
	}
	s.logger.Info("resource request submitted",
		zap.String("id", req.ID.String()),
		zap.String("title", req.Title),
		zap.String("type", string(req.Type)),
		zap.String("priority", string(req.Priority)),
		zap.String("submitted_by", req.SubmittedBy),
	)
	return models.RequestAck{Success: true, Message: requestAckMessage, ID: req.ID}, nil
}

// GormRequestSink lưu yêu cầu vào database, có circuit breaker bọc ngoài
type GormRequestSink struct {
	db      *gorm.DB
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewGormRequestSink(db *gorm.DB, logger *zap.Logger) *GormRequestSink {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "resource-request-sink",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &GormRequestSink{db: db, breaker: cb, logger: logger}
}

func (s *GormRequestSink) Submit(ctx context.Context, req models.ResourceRequest) (models.RequestAck, error) {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.db.WithContext(ctx).Create(&req).Error
	})
	if err != nil {
		s.logger.Error("save resource request failed", zap.String("id", req.ID.String()), zap.Error(err))
		return models.RequestAck{Success: false, Message: "Không thể lưu yêu cầu, vui lòng thử lại"}, fmt.Errorf("lưu yêu cầu: %w", err)
	}
	return models.RequestAck{Success: true, Message: requestAckMessage, ID: req.ID}, nil
}
