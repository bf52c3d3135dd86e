package services

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/vnkhanh/e-academy-backend/models"
)

var (
	ErrResourceNotFound = errors.New("không tìm thấy tài liệu")
	ErrDuplicateID      = errors.New("trùng id tài liệu")
)

// CategoryInfo là một chủ đề trong catalog kèm slug để dùng trên URL
type CategoryInfo struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// CatalogStore giữ tập tài liệu cố định, chỉ đọc sau khi khởi tạo
// nên có thể dùng đồng thời mà không cần khóa.
type CatalogStore struct {
	resources []models.Resource
	byID      map[string]int
}

func NewCatalogStore(resources []models.Resource) (*CatalogStore, error) {
	s := &CatalogStore{
		resources: make([]models.Resource, len(resources)),
		byID:      make(map[string]int, len(resources)),
	}
	copy(s.resources, resources)
	for i, r := range s.resources {
		if _, ok := s.byID[r.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		s.byID[r.ID] = i
	}
	return s, nil
}

// NewSampleCatalogStore khởi tạo store từ dữ liệu mẫu
func NewSampleCatalogStore() *CatalogStore {
	s, err := NewCatalogStore(SampleResources())
	if err != nil {
		// dữ liệu mẫu luôn có id duy nhất
		panic(err)
	}
	return s
}

// All trả về bản sao theo thứ tự catalog
func (s *CatalogStore) All() []models.Resource {
	out := make([]models.Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

func (s *CatalogStore) Len() int {
	return len(s.resources)
}

func (s *CatalogStore) Get(id string) (models.Resource, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Resource{}, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}
	return s.resources[i], nil
}

// Categories trả về các chủ đề theo thứ tự xuất hiện đầu tiên
func (s *CatalogStore) Categories() []CategoryInfo {
	index := map[string]int{}
	var out []CategoryInfo
	for _, r := range s.resources {
		for _, c := range r.Category {
			if i, ok := index[c]; ok {
				out[i].Count++
				continue
			}
			index[c] = len(out)
			out = append(out, CategoryInfo{Name: c, Slug: slug.Make(c), Count: 1})
		}
	}
	return out
}

// ResolveCategory nhận tên hoặc slug, trả về tên chủ đề trong catalog.
// Không khớp thì giữ nguyên giá trị đầu vào.
func (s *CatalogStore) ResolveCategory(value string) string {
	for _, c := range s.Categories() {
		if c.Name == value || c.Slug == value {
			return c.Name
		}
	}
	return value
}
