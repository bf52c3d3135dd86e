package models

type Role string

const (
	RoleAdmin   Role = "admin"   // Quản trị hệ thống
	RoleFaculty Role = "faculty" // Giảng viên
	RoleStudent Role = "student" // Sinh viên, quyền thấp nhất khi đã đăng nhập
	RolePublic  Role = "public"  // Chưa đăng nhập
)

// Session là dữ liệu phiên do identity provider cung cấp.
// RoleClaim giữ nguyên giá trị claim, có thể rỗng hoặc không hợp lệ.
type Session struct {
	Authenticated bool
	UserID        string
	RoleClaim     string
}

// Anonymous là phiên chưa đăng nhập
var Anonymous = Session{}
