package dto

// ── 课次模块 DTO ──

// SessionRequest 创建 / 更新课次请求
// 班级与科目按名称解析；teacherName 可选：
// 显式指定优先，否则请求者为教师时指向请求者本人
type SessionRequest struct {
	Date        string `json:"date"        binding:"required,datetime=2006-01-02"`
	ClassName   string `json:"className"   binding:"required"`
	SubjectName string `json:"subjectName" binding:"required"`
	TeacherName string `json:"teacherName" binding:"omitempty"`
}
