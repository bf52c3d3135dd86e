package utils

import (
	"strings"

	"github.com/vnkhanh/e-academy-backend/models"
)

const (
	maxDisplayAuthors    = 3
	maxDisplayCategories = 3
)

// ResourceDisplay là các chuỗi đã định dạng sẵn cho thẻ tài liệu
type ResourceDisplay struct {
	Authors    string   `json:"authors"`
	Categories []string `json:"categories"`
	Source     *string  `json:"source,omitempty"`
}

// FormatAuthors nối tối đa 3 tác giả, nhiều hơn thì thêm "et al."
func FormatAuthors(authors []string) string {
	if len(authors) <= maxDisplayAuthors {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:maxDisplayAuthors], ", ") + " et al."
}

func DisplayCategories(categories []string) []string {
	if len(categories) <= maxDisplayCategories {
		return append([]string{}, categories...)
	}
	return append([]string{}, categories[:maxDisplayCategories]...)
}

// SourceLine ưu tiên publisher, không có thì dùng journal
func SourceLine(r models.Resource) *string {
	if r.Publisher != nil {
		return r.Publisher
	}
	return r.Journal
}

func Display(r models.Resource) ResourceDisplay {
	return ResourceDisplay{
		Authors:    FormatAuthors(r.Authors),
		Categories: DisplayCategories(r.Category),
		Source:     SourceLine(r),
	}
}
