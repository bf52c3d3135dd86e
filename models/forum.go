package models

import "time"

type TopicAuthor struct {
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type LastPost struct {
	Author    string  `json:"author"`
	Date      string  `json:"date"` // dạng "2 hours ago", chỉ để hiển thị
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type ForumTopic struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Category  string      `json:"category"`
	Author    TopicAuthor `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	LastPost  LastPost    `json:"last_post"`
	Replies   int         `json:"replies"`
	Views     int         `json:"views"`
	IsNew     bool        `json:"is_new"`
	IsPinned  bool        `json:"is_pinned"`
	IsSolved  bool        `json:"is_solved"`
	Tags      []string    `json:"tags"`
}

type TopicSort string

const (
	TopicSortLatest   TopicSort = "latest"
	TopicSortActivity TopicSort = "activity"
	TopicSortViews    TopicSort = "views"
)

// TopicFilter là bộ lọc danh sách chủ đề thảo luận.
// Category "all" hoặc rỗng nghĩa là không lọc.
type TopicFilter struct {
	Query    string
	Category string
	Sort     TopicSort
}
