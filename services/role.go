package services

import "github.com/vnkhanh/e-academy-backend/models"

// Các đường dẫn trang mà frontend điều hướng tới
const (
	PathHome             = "/"
	PathBrowse           = "/browse"
	PathRequest          = "/request"
	PathForum            = "/forum"
	PathAdminDashboard   = "/admin"
	PathFacultyDashboard = "/faculty"
	PathDashboard        = "/dashboard"
	PathSignIn           = "/sign-in"
	PathSignUp           = "/sign-up"
)

// ResolveRole suy ra vai trò từ phiên hiện tại.
// Claim so khớp chính xác; đã đăng nhập nhưng claim rỗng hoặc lạ thì hạ về student, không bao giờ nâng quyền.
func ResolveRole(s models.Session) models.Role {
	if !s.Authenticated {
		return models.RolePublic
	}
	switch models.Role(s.RoleClaim) {
	case models.RoleAdmin:
		return models.RoleAdmin
	case models.RoleFaculty:
		return models.RoleFaculty
	default:
		return models.RoleStudent
	}
}

// DefaultLandingRoute là trang đích sau đăng nhập theo vai trò
func DefaultLandingRoute(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return PathAdminDashboard
	case models.RoleFaculty:
		return PathFacultyDashboard
	default:
		return PathBrowse
	}
}
