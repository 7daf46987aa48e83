package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fouadlamrini/School-Attendance/internal/dto"
	"github.com/fouadlamrini/School-Attendance/internal/service"
	"github.com/fouadlamrini/School-Attendance/pkg/response"
)

// AttendanceHandler 点名模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Create 登记一次点名。
// 班级按 className 定位，课次按 (班级, date) 定位，学生按 (studentName, studentEmail) 定位；
// 任一解析失败返回 404。同一 (课次, 学生) 重复登记返回 409
// POST /attendance
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attendanceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 12001, "班级不存在")
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(c, 15001, "课次不存在")
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 14001, "学生不存在")
		case errors.Is(err, service.ErrAttendanceExists):
			response.Conflict(c, 16002, "该学生在此课次已有点名记录")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// UpdateStatus 修改点名状态
// PUT /attendance/:id
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attendanceSvc.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			response.NotFound(c, 16001, "点名记录不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListBySession 按课次查询点名记录
// GET /attendance/session/:id
func (h *AttendanceHandler) ListBySession(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.ListBySession(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListByStudent 按学生查询点名记录
// GET /attendance/student/:id
func (h *AttendanceHandler) ListByStudent(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.ListByStudent(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListByClass 按班级查询点名记录（跨该班级全部课次）
// GET /attendance/class/:id
func (h *AttendanceHandler) ListByClass(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.ListByClass(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
