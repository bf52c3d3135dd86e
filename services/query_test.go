package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vnkhanh/e-academy-backend/models"
)

func ids(rs []models.Resource) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

// expectMatch kiểm tra độc lập từng điều kiện lọc
func expectMatch(r models.Resource, c models.FilterCriteria) bool {
	typeOK := len(c.Types) == 0
	for _, t := range c.Types {
		if t == r.Type {
			typeOK = true
		}
	}
	accessOK := len(c.AccessLevels) == 0
	for _, a := range c.AccessLevels {
		if a == r.Access {
			accessOK = true
		}
	}
	yearOK := (c.YearRange.Min == 0 && c.YearRange.Max == 0) ||
		(r.Year >= c.YearRange.Min && r.Year <= c.YearRange.Max)
	catOK := len(c.Categories) == 0
	for _, want := range c.Categories {
		for _, have := range r.Category {
			if want == have {
				catOK = true
			}
		}
	}
	searchOK := c.SearchQuery == ""
	if !searchOK {
		q := strings.ToLower(c.SearchQuery)
		searchOK = strings.Contains(strings.ToLower(r.Title), q)
		for _, a := range r.Authors {
			searchOK = searchOK || strings.Contains(strings.ToLower(a), q)
		}
		if r.Abstract != nil {
			searchOK = searchOK || strings.Contains(strings.ToLower(*r.Abstract), q)
		}
	}
	return typeOK && accessOK && yearOK && catOK && searchOK
}

func TestQuery(t *testing.T) {
	catalog := SampleResources()

	t.Run("EmptyCriteriaIsIdentity", func(t *testing.T) {
		assert.Equal(t, catalog, Query(catalog, models.FilterCriteria{}))
	})

	t.Run("DefaultCriteriaIsIdentity", func(t *testing.T) {
		now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, ids(catalog), ids(Query(catalog, models.DefaultCriteria(now))))
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		got := Query(nil, models.FilterCriteria{SortBy: models.SortCitations})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("PapersNewest", func(t *testing.T) {
		got := Query(catalog, models.FilterCriteria{
			Types:     []models.ResourceType{models.TypePaper},
			YearRange: models.YearRange{Min: 2020, Max: 2023},
			SortBy:    models.SortNewest,
		})
		// 1 và 4 cùng năm 2022, giữ thứ tự catalog
		assert.Equal(t, []string{"5", "1", "4", "6"}, ids(got))
	})

	t.Run("InvertedYearRange", func(t *testing.T) {
		got := Query(catalog, models.FilterCriteria{YearRange: models.YearRange{Min: 2100, Max: 1900}})
		assert.Empty(t, got)
	})

	t.Run("YearRangeInclusive", func(t *testing.T) {
		got := Query(catalog, models.FilterCriteria{YearRange: models.YearRange{Min: 2023, Max: 2023}})
		assert.Equal(t, []string{"3", "5"}, ids(got))
	})

	t.Run("AccessLevels", func(t *testing.T) {
		got := Query(catalog, models.FilterCriteria{
			AccessLevels: []models.AccessLevel{models.AccessFaculty, models.AccessRestricted},
		})
		assert.Equal(t, []string{"3", "4"}, ids(got))
	})

	t.Run("CategoriesMatchAny", func(t *testing.T) {
		got := Query(catalog, models.FilterCriteria{Categories: []string{"Physics", "Biology"}})
		assert.Equal(t, []string{"2", "4"}, ids(got))
	})

	t.Run("SearchTitleAuthorAbstract", func(t *testing.T) {
		cases := map[string][]string{
			"QUANTUM":      {"2"},
			"jane smith":   {"1"},
			"coral reefs":  {"5"},
			"introduction": {"2", "8"},
			"no-such-text": {},
		}
		for q, want := range cases {
			got := Query(catalog, models.FilterCriteria{SearchQuery: q})
			assert.Equal(t, want, ids(got), q)
		}
	})

	t.Run("MissingAbstractDoesNotMatch", func(t *testing.T) {
		r := models.Resource{ID: "x", Title: "Untitled", Authors: []string{"A"}, Type: models.TypeVideo, Year: 2020}
		assert.Empty(t, Query([]models.Resource{r}, models.FilterCriteria{SearchQuery: "lecture"}))
		assert.Len(t, Query([]models.Resource{r}, models.FilterCriteria{SearchQuery: "untitled"}), 1)
	})

	t.Run("SoundAndComplete", func(t *testing.T) {
		criteriaSet := []models.FilterCriteria{
			{Types: []models.ResourceType{models.TypeBook}},
			{AccessLevels: []models.AccessLevel{models.AccessOpen}, SearchQuery: "ai"},
			{Categories: []string{"Computer Science"}, YearRange: models.YearRange{Min: 2022, Max: 2030}},
			{Types: []models.ResourceType{models.TypePaper, models.TypeCourse}, SearchQuery: "engineering"},
			{SearchQuery: "the", SortBy: models.SortCitations},
		}
		for _, c := range criteriaSet {
			got := map[string]bool{}
			for _, id := range ids(Query(catalog, c)) {
				got[id] = true
			}
			for _, r := range catalog {
				assert.Equal(t, expectMatch(r, c), got[r.ID], "resource %s criteria %+v", r.ID, c)
			}
		}
	})

	t.Run("DoesNotMutateCatalog", func(t *testing.T) {
		before := ids(catalog)
		Query(catalog, models.FilterCriteria{SortBy: models.SortNewest})
		assert.Equal(t, before, ids(catalog))
	})
}

func TestQuerySort(t *testing.T) {
	catalog := SampleResources()

	t.Run("NewestOldestReversedWithoutTies", func(t *testing.T) {
		distinct := []models.Resource{}
		seen := map[int]bool{}
		for _, r := range catalog {
			if !seen[r.Year] {
				seen[r.Year] = true
				distinct = append(distinct, r)
			}
		}
		require.Len(t, distinct, 4)

		newest := ids(Query(distinct, models.FilterCriteria{SortBy: models.SortNewest}))
		oldest := ids(Query(distinct, models.FilterCriteria{SortBy: models.SortOldest}))
		for i := range newest {
			assert.Equal(t, newest[i], oldest[len(oldest)-1-i])
		}
	})

	t.Run("CitationsKeepUncitedInPlace", func(t *testing.T) {
		got := Query(catalog, models.FilterCriteria{SortBy: models.SortCitations})
		assert.Equal(t, []string{"4", "7", "3", "2", "6", "8", "1", "5"}, ids(got))
	})

	t.Run("CitationsAllMissing", func(t *testing.T) {
		rs := []models.Resource{{ID: "a", Year: 2001}, {ID: "b", Year: 2000}}
		assert.NotPanics(t, func() {
			assert.Equal(t, []string{"a", "b"}, ids(Query(rs, models.FilterCriteria{SortBy: models.SortCitations})))
		})
	})

	t.Run("RelevanceKeepsOrder", func(t *testing.T) {
		got := Query(catalog, models.FilterCriteria{SortBy: models.SortRelevance, SearchQuery: "a"})
		assert.Equal(t, ids(catalog), ids(got))
	})
}

func TestFeatured(t *testing.T) {
	catalog := SampleResources()
	assert.Equal(t, []string{"4", "7", "2"}, ids(Featured(catalog, DefaultFeaturedCount)))
	assert.Len(t, Featured(catalog, 100), len(catalog))
	// tài liệu không có citation count xếp cuối
	all := Featured(catalog, len(catalog))
	assert.Equal(t, "3", all[len(all)-1].ID)
	assert.Empty(t, Featured(catalog, 0))
}
