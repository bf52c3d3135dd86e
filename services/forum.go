package services

import (
	"sort"
	"strings"
	"time"

	"github.com/vnkhanh/e-academy-backend/models"
)

func forumDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleTopics là dữ liệu mẫu của diễn đàn
func SampleTopics() []models.ForumTopic {
	return []models.ForumTopic{
		{
			ID:        "1",
			Title:     "Resources for Machine Learning fundamentals?",
			Category:  "Computer Science",
			Author:    models.TopicAuthor{Name: "Alex Johnson"},
			CreatedAt: forumDate("2023-03-15"),
			LastPost:  models.LastPost{Author: "Maria Chen", Date: "2 hours ago"},
			Replies:   12,
			Views:     143,
			IsNew:     true,
			Tags:      []string{"machine learning", "beginners", "textbooks"},
		},
		{
			ID:        "2",
			Title:     "Looking for recent papers on climate change impact on marine ecosystems",
			Category:  "Biology",
			Author:    models.TopicAuthor{Name: "Maria Chen"},
			CreatedAt: forumDate("2023-03-12"),
			LastPost:  models.LastPost{Author: "David Kim", Date: "1 day ago"},
			Replies:   5,
			Views:     87,
			Tags:      []string{"climate change", "marine biology", "research papers"},
		},
		{
			ID:        "3",
			Title:     "Recommendations for quantum physics textbooks for beginners?",
			Category:  "Physics",
			Author:    models.TopicAuthor{Name: "David Kim"},
			CreatedAt: forumDate("2023-03-10"),
			LastPost:  models.LastPost{Author: "Alex Johnson", Date: "3 days ago"},
			Replies:   18,
			Views:     220,
			IsSolved:  true,
			Tags:      []string{"quantum physics", "textbooks", "beginners"},
		},
		{
			ID:        "4",
			Title:     "[ANNOUNCEMENT] New research papers added to the database - March 2023",
			Category:  "Announcements",
			Author:    models.TopicAuthor{Name: "Admin"},
			CreatedAt: forumDate("2023-03-05"),
			LastPost:  models.LastPost{Author: "Admin", Date: "5 days ago"},
			Replies:   3,
			Views:     312,
			IsPinned:  true,
			Tags:      []string{"announcements", "updates", "new resources"},
		},
		{
			ID:        "5",
			Title:     "Discussion: Ethics in AI research and development",
			Category:  "Ethics",
			Author:    models.TopicAuthor{Name: "Sarah Williams"},
			CreatedAt: forumDate("2023-03-01"),
			LastPost:  models.LastPost{Author: "John Doe", Date: "1 week ago"},
			Replies:   32,
			Views:     278,
			Tags:      []string{"AI ethics", "research ethics", "discussion"},
		},
	}
}

// QueryTopics lọc và sắp xếp chủ đề. Chủ đề ghim luôn đứng đầu.
func QueryTopics(topics []models.ForumTopic, f models.TopicFilter) []models.ForumTopic {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.ForumTopic, 0, len(topics))
	for _, t := range topics {
		if q != "" && !topicMatches(t, q) {
			continue
		}
		if f.Category != "" && f.Category != "all" && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		switch f.Sort {
		case models.TopicSortActivity:
			return a.Replies > b.Replies
		case models.TopicSortViews:
			return a.Views > b.Views
		case models.TopicSortLatest, "":
			return a.CreatedAt.After(b.CreatedAt)
		}
		return false
	})
	return out
}

func topicMatches(t models.ForumTopic, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Category), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// TopicCategories trả về "all" rồi tới các chủ đề theo thứ tự xuất hiện
func TopicCategories(topics []models.ForumTopic) []string {
	out := []string{"all"}
	seen := map[string]bool{}
	for _, t := range topics {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}
