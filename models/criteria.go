package models

import "time"

type SortBy string

const (
	SortRelevance SortBy = "relevance"
	SortNewest    SortBy = "newest"
	SortOldest    SortBy = "oldest"
	SortCitations SortBy = "citations"
)

func (s SortBy) Valid() bool {
	switch s {
	case SortRelevance, SortNewest, SortOldest, SortCitations:
		return true
	}
	return false
}

// MinCatalogYear là cận dưới mặc định của thanh chọn năm
const MinCatalogYear = 1950

// YearRange là khoảng năm đóng [Min, Max].
// Giá trị zero (0, 0) nghĩa là không giới hạn năm.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsZero: {0, 0} nghĩa là không giới hạn năm. Năm <= 0 đọc từ URL bị bỏ qua
// nên người dùng không thể vô tình tạo ra khoảng rỗng này.
func (r YearRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

func (r YearRange) Contains(year int) bool {
	if r.IsZero() {
		return true
	}
	return year >= r.Min && year <= r.Max
}

// FilterCriteria là tham số truy vấn catalog, không được lưu lại
type FilterCriteria struct {
	Types        []ResourceType `json:"types"`
	AccessLevels []AccessLevel  `json:"access_levels"`
	YearRange    YearRange      `json:"year_range"`
	Categories   []string       `json:"categories"`
	SearchQuery  string         `json:"search_query"`
	SortBy       SortBy         `json:"sort_by"`
}

// DefaultCriteria là bộ lọc ban đầu của trang duyệt tài liệu
func DefaultCriteria(now time.Time) FilterCriteria {
	return FilterCriteria{
		Types:        []ResourceType{},
		AccessLevels: []AccessLevel{},
		YearRange:    YearRange{Min: MinCatalogYear, Max: now.Year()},
		Categories:   []string{},
		SortBy:       SortRelevance,
	}
}

// ActiveFilterCount đếm số checkbox đang bật (type + access + category)
func (c FilterCriteria) ActiveFilterCount() int {
	return len(c.Types) + len(c.AccessLevels) + len(c.Categories)
}
