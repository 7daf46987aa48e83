package dto

// ── 班级 / 科目模块 DTO ──

// ClassRequest 创建 / 更新班级请求
type ClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubjectRequest 创建 / 更新科目请求
type SubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// StudentRequest 创建 / 更新学生请求
// className 按名称解析班级，找不到时返回 invalid className
type StudentRequest struct {
	Name      string `json:"name"      binding:"required"`
	Email     string `json:"email"     binding:"required,email"`
	ClassName string `json:"className" binding:"required"`
}
