package services

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vnkhanh/e-academy-backend/models"
)

// CriteriaFromQuery đọc tham số URL của trang /browse vào FilterCriteria.
// Các tham số gốc là type, category, q; access, year_min, year_max, sort là mở rộng.
// Giá trị không hợp lệ bị bỏ qua, không báo lỗi.
func CriteriaFromQuery(values url.Values, now time.Time, resolveCategory func(string) string) models.FilterCriteria {
	c := models.DefaultCriteria(now)

	for _, v := range splitValues(values["type"]) {
		if t := models.ResourceType(v); t.Valid() && !slices.Contains(c.Types, t) {
			c.Types = append(c.Types, t)
		}
	}
	for _, v := range splitValues(values["access"]) {
		if a := models.AccessLevel(v); a.Valid() {
			c.AccessLevels = append(c.AccessLevels, a)
		}
	}
	for _, v := range values["category"] {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if resolveCategory != nil {
			v = resolveCategory(v)
		}
		c.Categories = append(c.Categories, v)
	}
	c.SearchQuery = strings.TrimSpace(values.Get("q"))

	// năm <= 0 không hợp lệ trên URL, giữ cận mặc định (YearRange rỗng nghĩa là không giới hạn)
	if n, err := strconv.Atoi(values.Get("year_min")); err == nil && n > 0 {
		c.YearRange.Min = n
	}
	if n, err := strconv.Atoi(values.Get("year_max")); err == nil && n > 0 {
		c.YearRange.Max = n
	}
	if s := models.SortBy(values.Get("sort")); s.Valid() {
		c.SortBy = s
	}
	return c
}

// CriteriaToQuery ghi criteria ngược lại URL: type và category chỉ ghi khi
// chọn đúng một giá trị, q chỉ ghi khi khác rỗng.
func CriteriaToQuery(c models.FilterCriteria) url.Values {
	v := url.Values{}
	if len(c.Types) == 1 {
		v.Set("type", string(c.Types[0]))
	}
	if len(c.Categories) == 1 {
		v.Set("category", c.Categories[0])
	}
	if c.SearchQuery != "" {
		v.Set("q", c.SearchQuery)
	}
	return v
}

// splitValues hỗ trợ cả ?type=a&type=b lẫn ?type=a,b
func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, p := range strings.Split(r, ",") {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

