package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vnkhanh/e-academy-backend/controllers"
	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/services"
	"github.com/vnkhanh/e-academy-backend/utils"
)

const testSecret = "routes-test-secret"

func newDeps() *controllers.Deps {
	store := services.NewSampleCatalogStore()
	return &controllers.Deps{
		Store:  store,
		Source: services.NewMockCatalogSource(store, services.SourceLatency{}),
		Sink:   services.NewLogRequestSink(zap.NewNop()),
		Topics: services.SampleTopics(),
		Logger: zap.NewNop(),
		Now:    func() time.Time { return time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC) },
	}
}

func newRouter(d *controllers.Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret(testSecret)
	return SetupRouter(gin.New(), d)
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken("user-"+role, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(r http.Handler, method, path, tok, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type listBody struct {
	Total     int `json:"total"`
	Resources []struct {
		ID      string `json:"id"`
		Display struct {
			Authors string `json:"authors"`
		} `json:"display"`
	} `json:"resources"`
	Query   string `json:"query"`
	Message string `json:"message"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) (listBody, []string) {
	t.Helper()
	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	ids := []string{}
	for _, r := range body.Resources {
		ids = append(ids, r.ID)
	}
	return body, ids
}

func TestResourceAPI(t *testing.T) {
	r := newRouter(newDeps())

	t.Run("PapersNewest", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/resources?type=paper&year_min=2020&year_max=2023&sort=newest", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		body, ids := decodeList(t, w)
		assert.Equal(t, []string{"5", "1", "4", "6"}, ids)
		assert.Equal(t, "type=paper", body.Query)
		assert.Empty(t, body.Message)
	})

	t.Run("CategorySlugAndSearch", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/resources?category=artificial-intelligence&q=ethical", "", "")
		_, ids := decodeList(t, w)
		assert.Equal(t, []string{"6"}, ids)
	})

	t.Run("InvertedRangeIsEmpty", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/resources?year_min=2100&year_max=1900", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		body, ids := decodeList(t, w)
		assert.Empty(t, ids)
		assert.Equal(t, 0, body.Total)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("DisplayTruncatesAuthors", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/resources?q=microbiome", "", "")
		body, _ := decodeList(t, w)
		require.Len(t, body.Resources, 1)
		assert.Equal(t, "Sarah Williams, James Lee, Emily Brown et al.", body.Resources[0].Display.Authors)
	})

	t.Run("GetResource", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/resources/3", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "citation_count")

		w = do(r, http.MethodGet, "/api/resources/99", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Featured", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/resources/featured?count=2", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		_, ids := decodeList(t, w)
		assert.Equal(t, []string{"4", "7"}, ids)
	})

	t.Run("Categories", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/categories", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"computer-science"`)
	})
}

type failingSource struct{ services.CatalogSource }

func (failingSource) ListResources(context.Context, *models.FilterCriteria) ([]models.Resource, error) {
	return nil, errors.New("upstream timeout")
}

func TestResourceAPIFetchFailure(t *testing.T) {
	d := newDeps()
	d.Source = failingSource{d.Source}
	r := newRouter(d)

	w := do(r, http.MethodGet, "/api/resources", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body, ids := decodeList(t, w)
	assert.Empty(t, ids)
	assert.NotEmpty(t, body.Message)
}

func TestPageGuard(t *testing.T) {
	r := newRouter(newDeps())

	cases := []struct {
		name     string
		path     string
		role     string // rỗng = khách
		code     int
		location string
	}{
		{"HomeAnonymous", "/", "", http.StatusOK, ""},
		{"BrowseAnonymous", "/browse?type=book", "", http.StatusOK, ""},
		{"RequestAnonymous", "/request", "", http.StatusFound, "/sign-in"},
		{"ForumAnonymous", "/forum", "", http.StatusFound, "/sign-in"},
		{"ForumStudent", "/forum", "student", http.StatusOK, ""},
		{"AdminAsFaculty", "/admin", "faculty", http.StatusFound, "/"},
		{"AdminAsAdmin", "/admin", "admin", http.StatusOK, ""},
		{"FacultyAsStudent", "/faculty", "student", http.StatusFound, "/"},
		{"DashboardAdmin", "/dashboard", "admin", http.StatusFound, "/admin"},
		{"DashboardFaculty", "/dashboard", "faculty", http.StatusFound, "/faculty"},
		{"DashboardAnonymous", "/dashboard", "", http.StatusFound, "/browse"},
		{"SignIn", "/sign-in", "", http.StatusOK, ""},
		{"SignInSubPath", "/sign-in/", "", http.StatusOK, ""},
		{"SignInFactor", "/sign-in/factor-one", "", http.StatusOK, ""},
		{"SignUp", "/sign-up", "", http.StatusOK, ""},
		{"SignUpSubPath", "/sign-up/verify", "", http.StatusOK, ""},
		{"Unknown", "/nowhere", "admin", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := ""
			if tc.role != "" {
				tok = token(t, tc.role)
			}
			w := do(r, http.MethodGet, tc.path, tok, "")
			assert.Equal(t, tc.code, w.Code)
			if tc.location != "" {
				assert.Equal(t, tc.location, w.Header().Get("Location"))
			}
		})
	}

	t.Run("InvalidTokenIsAnonymous", func(t *testing.T) {
		w := do(r, http.MethodGet, "/request", "garbage", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/sign-in", w.Header().Get("Location"))
	})

	t.Run("SessionCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/forum", nil)
		req.AddCookie(&http.Cookie{Name: "__session", Value: token(t, "student")})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSessionAndNavigate(t *testing.T) {
	r := newRouter(newDeps())

	w := do(r, http.MethodGet, "/api/session", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false,"user_id":"","role":"public","landing":"/browse"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/session", token(t, "librarian"), "")
	assert.Contains(t, w.Body.String(), `"role":"student"`)

	w = do(r, http.MethodGet, "/api/navigate?path=/admin", token(t, "faculty"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"decision":{"kind":"redirect","location":"/"}`)

	w = do(r, http.MethodGet, "/api/navigate", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitRequest(t *testing.T) {
	r := newRouter(newDeps())
	body := `{"title":"Deep Learning","authors":"Ian Goodfellow","type":"book","description":"Reading group","priority":"high"}`

	w := do(r, http.MethodPost, "/api/requests", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/requests", token(t, "student"), body)
	require.Equal(t, http.StatusCreated, w.Code)
	var ack models.RequestAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.True(t, ack.Success)

	w = do(r, http.MethodPost, "/api/requests", token(t, "student"), `{"title":"x","authors":"y"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/requests", token(t, "student"),
		`{"title":"x","authors":"y","description":"z","priority":"whenever"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type failingSink struct{}

func (failingSink) Submit(context.Context, models.ResourceRequest) (models.RequestAck, error) {
	return models.RequestAck{}, errors.New("db down")
}

func TestSubmitRequestSinkFailure(t *testing.T) {
	d := newDeps()
	d.Sink = failingSink{}
	r := newRouter(d)

	w := do(r, http.MethodPost, "/api/requests", token(t, "faculty"),
		`{"title":"x","authors":"y","description":"z"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestForumAndDashboards(t *testing.T) {
	r := newRouter(newDeps())

	w := do(r, http.MethodGet, "/api/forum/topics?sort=activity", token(t, "student"), "")
	require.Equal(t, http.StatusOK, w.Code)
	var forum struct {
		Topics []models.ForumTopic `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forum))
	require.Len(t, forum.Topics, 5)
	assert.True(t, forum.Topics[0].IsPinned)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/admin/summary", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/admin/summary", token(t, "faculty"), "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/admin/summary", token(t, "admin"), "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/faculty/summary", token(t, "admin"), "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/faculty/summary", token(t, "faculty"), "").Code)

	w = do(r, http.MethodGet, "/api/admin/resources/export", token(t, "admin"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "resources-20261018.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestHealth(t *testing.T) {
	r := newRouter(newDeps())
	w := do(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"disabled"`)
}
