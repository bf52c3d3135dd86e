package services

import (
	"context"
	"errors"
	"time"

	"github.com/vnkhanh/e-academy-backend/models"
)

// DefaultFeaturedCount là số tài liệu nổi bật mặc định trên trang chủ
const DefaultFeaturedCount = 3

// CatalogSource là nguồn dữ liệu catalog mà engine truy vấn tiêu thụ
type CatalogSource interface {
	ListResources(ctx context.Context, criteria *models.FilterCriteria) ([]models.Resource, error)
	GetResource(ctx context.Context, id string) (models.Resource, error)
	ListFeatured(ctx context.Context, count int) ([]models.Resource, error)
}

// SourceLatency là độ trễ giả lập cho từng thao tác
type SourceLatency struct {
	List     time.Duration
	Get      time.Duration
	Featured time.Duration
}

// DefaultSourceLatency giống độ trễ của API mock ban đầu
var DefaultSourceLatency = SourceLatency{
	List:     500 * time.Millisecond,
	Get:      300 * time.Millisecond,
	Featured: 300 * time.Millisecond,
}

// ScaleLatency dùng một mốc duy nhất (ms) cho list, get và featured lấy 60%.
// base âm trả về độ trễ mặc định.
func ScaleLatency(baseMs int) SourceLatency {
	if baseMs < 0 {
		return DefaultSourceLatency
	}
	list := time.Duration(baseMs) * time.Millisecond
	return SourceLatency{List: list, Get: list * 3 / 5, Featured: list * 3 / 5}
}

// MockCatalogSource đọc từ CatalogStore trong bộ nhớ với độ trễ giả lập
type MockCatalogSource struct {
	store   *CatalogStore
	latency SourceLatency
}

func NewMockCatalogSource(store *CatalogStore, latency SourceLatency) *MockCatalogSource {
	return &MockCatalogSource{store: store, latency: latency}
}

func (s *MockCatalogSource) ListResources(ctx context.Context, criteria *models.FilterCriteria) ([]models.Resource, error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return nil, err
	}
	if criteria == nil {
		return s.store.All(), nil
	}
	return Query(s.store.All(), *criteria), nil
}

func (s *MockCatalogSource) GetResource(ctx context.Context, id string) (models.Resource, error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return models.Resource{}, err
	}
	return s.store.Get(id)
}

func (s *MockCatalogSource) ListFeatured(ctx context.Context, count int) ([]models.Resource, error) {
	if err := wait(ctx, s.latency.Featured); err != nil {
		return nil, err
	}
	return Featured(s.store.All(), count), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsCanceled cho biết lỗi đến từ việc hủy context
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
