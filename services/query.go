package services

import (
	"slices"
	"sort"
	"strings"

	"github.com/vnkhanh/e-academy-backend/models"
)

// Query lọc và sắp xếp catalog theo criteria.
// Hàm thuần: không I/O, không sửa catalog đầu vào, không bao giờ lỗi.
func Query(catalog []models.Resource, criteria models.FilterCriteria) []models.Resource {
	result := make([]models.Resource, 0, len(catalog))
	for _, r := range catalog {
		if Matches(r, criteria) {
			result = append(result, r)
		}
	}
	sortResources(result, criteria.SortBy)
	return result
}

// Matches kiểm tra đủ 5 điều kiện lọc (AND giữa các chiều, chiều rỗng luôn đúng)
func Matches(r models.Resource, c models.FilterCriteria) bool {
	if len(c.Types) > 0 && !slices.Contains(c.Types, r.Type) {
		return false
	}
	if len(c.AccessLevels) > 0 && !slices.Contains(c.AccessLevels, r.Access) {
		return false
	}
	if !c.YearRange.Contains(r.Year) {
		return false
	}
	if len(c.Categories) > 0 && !hasAnyCategory(r.Category, c.Categories) {
		return false
	}
	if c.SearchQuery != "" && !matchesSearch(r, c.SearchQuery) {
		return false
	}
	return true
}

func hasAnyCategory(have, want []string) bool {
	for _, h := range have {
		if slices.Contains(want, h) {
			return true
		}
	}
	return false
}

func matchesSearch(r models.Resource, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, a := range r.Authors {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return r.Abstract != nil && strings.Contains(strings.ToLower(*r.Abstract), q)
}

func sortResources(rs []models.Resource, by models.SortBy) {
	switch by {
	case models.SortNewest:
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].Year > rs[j].Year })
	case models.SortOldest:
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].Year < rs[j].Year })
	case models.SortCitations:
		sortByCitations(rs)
	default:
		// relevance: chưa có thuật toán xếp hạng, giữ nguyên thứ tự catalog
	}
}

// sortByCitations sắp giảm dần theo số trích dẫn. Tài liệu không có
// citation count giữ nguyên vị trí, chỉ các tài liệu có count đổi chỗ
// cho nhau trong các vị trí của chúng.
func sortByCitations(rs []models.Resource) {
	var slots []int
	var counted []models.Resource
	for i, r := range rs {
		if r.CitationCount != nil {
			slots = append(slots, i)
			counted = append(counted, r)
		}
	}
	sort.SliceStable(counted, func(i, j int) bool {
		return *counted[i].CitationCount > *counted[j].CitationCount
	})
	for k, i := range slots {
		rs[i] = counted[k]
	}
}

// Featured trả về count tài liệu được trích dẫn nhiều nhất, thiếu count coi như 0
func Featured(catalog []models.Resource, count int) []models.Resource {
	if count <= 0 {
		return []models.Resource{}
	}
	out := slices.Clone(catalog)
	sort.SliceStable(out, func(i, j int) bool {
		return citations(out[i]) > citations(out[j])
	})
	if count < len(out) {
		out = out[:count]
	}
	return out
}

func citations(r models.Resource) int {
	if r.CitationCount == nil {
		return 0
	}
	return *r.CitationCount
}
