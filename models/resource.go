package models

type ResourceType string

const (
	TypePaper  ResourceType = "paper"
	TypeBook   ResourceType = "book"
	TypeVideo  ResourceType = "video"
	TypeCourse ResourceType = "course"
)

// AllResourceTypes theo thứ tự hiển thị trong bộ lọc
var AllResourceTypes = []ResourceType{TypePaper, TypeBook, TypeVideo, TypeCourse}

func (t ResourceType) Valid() bool {
	switch t {
	case TypePaper, TypeBook, TypeVideo, TypeCourse:
		return true
	}
	return false
}

// AccessLevel chỉ dùng để hiển thị, không phải cơ chế phân quyền
type AccessLevel string

const (
	AccessOpen       AccessLevel = "open"
	AccessStudent    AccessLevel = "student"
	AccessFaculty    AccessLevel = "faculty"
	AccessRestricted AccessLevel = "restricted"
)

var AllAccessLevels = []AccessLevel{AccessOpen, AccessStudent, AccessFaculty, AccessRestricted}

func (a AccessLevel) Valid() bool {
	switch a {
	case AccessOpen, AccessStudent, AccessFaculty, AccessRestricted:
		return true
	}
	return false
}

// Resource là một tài liệu trong catalog.
// Các trường tùy chọn dùng con trỏ để phân biệt "không có" với chuỗi rỗng.
type Resource struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Authors       []string     `json:"authors"`
	Type          ResourceType `json:"type"`
	Year          int          `json:"year"`
	Publisher     *string      `json:"publisher,omitempty"`
	Journal       *string      `json:"journal,omitempty"`
	Category      []string     `json:"category"`
	Abstract      *string      `json:"abstract,omitempty"`
	Access        AccessLevel  `json:"access"`
	CitationCount *int         `json:"citation_count,omitempty"`
	ThumbnailURL  *string      `json:"thumbnail_url,omitempty"`
}
