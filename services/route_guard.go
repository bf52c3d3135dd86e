package services

import (
	"strings"

	"github.com/vnkhanh/e-academy-backend/models"
)

type DecisionKind string

const (
	DecisionRender   DecisionKind = "render"
	DecisionRedirect DecisionKind = "redirect"
	DecisionNotFound DecisionKind = "not_found"
)

// Decision là kết quả của route guard cho một lần điều hướng
type Decision struct {
	Kind     DecisionKind `json:"kind"`
	Location string       `json:"location,omitempty"`
}

func Render() Decision { return Decision{Kind: DecisionRender} }
func RedirectTo(path string) Decision { return Decision{Kind: DecisionRedirect, Location: path} }
func NotFound() Decision { return Decision{Kind: DecisionNotFound} }

type routeAccess int

const (
	accessPublic routeAccess = iota
	accessSignedIn
	accessRole
	accessLanding
)

type routeRule struct {
	path     string
	access   routeAccess
	role     models.Role
	prefixed bool // khớp cả đường dẫn con, vd. /sign-in/factor-one
}

var routeTable = []routeRule{
	{path: PathHome, access: accessPublic},
	{path: PathBrowse, access: accessPublic},
	{path: PathSignIn, access: accessPublic, prefixed: true},
	{path: PathSignUp, access: accessPublic, prefixed: true},
	{path: PathRequest, access: accessSignedIn},
	{path: PathForum, access: accessSignedIn},
	{path: PathAdminDashboard, access: accessRole, role: models.RoleAdmin},
	{path: PathFacultyDashboard, access: accessRole, role: models.RoleFaculty},
	{path: PathDashboard, access: accessLanding},
}

// Authorize quyết định render, redirect hay not found. Không có nhánh lỗi.
// Trang chỉ cần đăng nhập chuyển về /sign-in, còn trang theo vai trò chuyển về /.
func Authorize(path string, s models.Session) Decision {
	rule, ok := matchRoute(normalizePath(path))
	if !ok {
		return NotFound()
	}
	switch rule.access {
	case accessSignedIn:
		if !s.Authenticated {
			return RedirectTo(PathSignIn)
		}
	case accessRole:
		if ResolveRole(s) != rule.role {
			return RedirectTo(PathHome)
		}
	case accessLanding:
		return RedirectTo(DefaultLandingRoute(ResolveRole(s)))
	}
	return Render()
}

func matchRoute(path string) (routeRule, bool) {
	for _, r := range routeTable {
		if path == r.path {
			return r, true
		}
		if r.prefixed && strings.HasPrefix(path, r.path+"/") {
			return r, true
		}
	}
	return routeRule{}, false
}

// normalizePath bỏ query, fragment và dấu "/" thừa ở cuối
func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if p == "" {
		return PathHome
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = PathHome
		}
	}
	return p
}
